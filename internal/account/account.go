// Package account ties the API client to the persisted session: logging in,
// completing region onboarding, and logging out. These are the only flows
// that write the session file.
package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sunning/internal/api"
	"sunning/internal/session"
	"sunning/pkg/types"

	"github.com/sirupsen/logrus"
)

var ErrMissingCredentials = errors.New("enter both an id and a password")

type Service struct {
	api     *api.Client
	session *session.Store
	logger  *logrus.Logger
}

func New(client *api.Client, store *session.Store, logger *logrus.Logger) *Service {
	return &Service{api: client, session: store, logger: logger}
}

// Status describes the stored session without touching the network. The
// login screen uses it to skip straight to the main or onboarding flow.
type Status struct {
	LoggedIn  bool
	Onboarded bool
}

func (s *Service) Status() Status {
	return Status{
		LoggedIn:  s.session.Token() != "",
		Onboarded: s.session.IsOnboarded(),
	}
}

// Login authenticates and persists the returned token and onboarding flag.
// Credentials are pre-checked before any request is made.
func (s *Service) Login(ctx context.Context, userID, password string) (types.LoginData, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(password) == "" {
		return types.LoginData{}, ErrMissingCredentials
	}

	data, err := s.api.Login(ctx, types.LoginRequest{UserID: userID, Password: password})
	if err != nil {
		return types.LoginData{}, err
	}

	if data.AccessToken == "" {
		return types.LoginData{}, errors.New("login response carried no access token")
	}

	if err := s.session.SetToken(data.AccessToken, data.IsOnboarded); err != nil {
		return types.LoginData{}, fmt.Errorf("persist session: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":   data.UserID,
		"onboarded": data.IsOnboarded,
	}).Info("logged in")

	return data, nil
}

// Onboard saves the chosen home region on the server and marks onboarding
// complete locally. Requires a stored token.
func (s *Service) Onboard(ctx context.Context, region types.Region) error {
	if s.session.Token() == "" {
		return types.ErrNotLoggedIn
	}
	if !region.Valid() {
		return fmt.Errorf("unknown region %q", region)
	}

	if _, err := s.api.SetUserRegion(ctx, region); err != nil {
		return err
	}

	if err := s.session.SetOnboarded(); err != nil {
		return fmt.Errorf("persist onboarding flag: %w", err)
	}

	s.logger.WithField("region", region).Info("onboarding complete")
	return nil
}

// Logout forgets the stored session. Purely local; the server keeps no
// client-visible session state.
func (s *Service) Logout() error {
	if err := s.session.Clear(); err != nil {
		return err
	}
	s.logger.Info("logged out")
	return nil
}
