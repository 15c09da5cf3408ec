package main

import (
	"fmt"
	"os"
	"time"

	"sunning/internal/account"
	"sunning/internal/api"
	"sunning/internal/session"
	"sunning/internal/toast"
	"sunning/pkg/types"

	"github.com/sirupsen/logrus"
)

// appEnv wires the shared pieces every screen command needs: config,
// logger, persisted session, API client, account flows, and the toast
// center. Built per invocation, never ambient.
type appEnv struct {
	config  *types.Config
	logger  *logrus.Logger
	session *session.Store
	api     *api.Client
	account *account.Service
	toasts  *toast.Center
}

func bootstrap() (*appEnv, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stderr)

	config, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if config.Environment != "development" {
		logger.SetLevel(logrus.WarnLevel)
	}

	store, err := session.New(config.SessionFile)
	if err != nil {
		return nil, err
	}

	client := api.NewClient(config, logger, store)

	return &appEnv{
		config:  config,
		logger:  logger,
		session: store,
		api:     client,
		account: account.New(client, store, logger),
		toasts:  toast.NewCenter(time.Duration(config.ToastDurationSec) * time.Second),
	}, nil
}

// notify records a toast and renders it to the terminal.
func (e *appEnv) notify(message string, level toast.Level) {
	t := e.toasts.Show(message, level)
	prefix := "ok"
	if t.Level == toast.Error {
		prefix = "error"
	}
	fmt.Fprintf(os.Stderr, "[%s] %s\n", prefix, t.Message)
}
