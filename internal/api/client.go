// Package api is the typed client for the Sunning REST API. Every response
// carries the {statusCode, message, data} envelope; the envelope's
// statusCode is checked even when the HTTP call itself succeeded.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"sunning/internal/utils"
	"sunning/pkg/types"

	"github.com/go-playground/form/v4"
	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"
)

// TokenSource yields the bearer token attached to authenticated requests.
// An empty token sends the request unauthenticated.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *logrus.Logger
	tokens  TokenSource
	encoder *form.Encoder

	// debug dumps decoded envelopes in development environments
	debug bool
}

func NewClient(config *types.Config, logger *logrus.Logger, tokens TokenSource) *Client {
	return &Client{
		baseURL: config.APIBaseURL,
		http: &http.Client{
			Timeout: time.Duration(config.HTTPTimeoutSec) * time.Second,
		},
		logger:  logger,
		tokens:  tokens,
		encoder: form.NewEncoder(),
		debug:   config.Environment == "development",
	}
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any

	// want is the envelope statusCode that counts as success
	want int

	// noAuth skips the bearer header even when a token is stored
	noAuth bool
}

func call[T any](ctx context.Context, c *Client, r request) (T, error) {
	var zero T

	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return zero, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return zero, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", utils.RequestID())

	if !r.noAuth {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		} else {
			c.logger.WithField("path", r.path).Debug("no stored token, sending unauthenticated")
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	// A 401 means an expired or invalid token. It is logged and surfaced
	// like any other failure; the stored session is deliberately left
	// alone and nothing is retried.
	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.WithFields(logrus.Fields{
			"method": r.method,
			"path":   r.path,
		}).Error("unauthorized response, token may be expired")
	}

	var envelope types.Envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return zero, &types.APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if c.debug {
		pp.Println(envelope)
	}

	if envelope.StatusCode != r.want {
		c.logger.WithFields(logrus.Fields{
			"method":  r.method,
			"path":    r.path,
			"status":  envelope.StatusCode,
			"message": envelope.Message,
		}).Error("api call failed")
		return zero, &types.APIError{StatusCode: envelope.StatusCode, Message: envelope.Message}
	}

	return envelope.Data, nil
}
