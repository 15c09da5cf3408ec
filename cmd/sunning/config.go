package main

import (
	"fmt"

	"sunning/pkg/types"

	"github.com/kelseyhightower/envconfig"
)

func loadConfig() (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.APIBaseURL == "" {
		return nil, fmt.Errorf("set API_BASE_URL")
	}

	if c.HTTPTimeoutSec == 0 {
		c.HTTPTimeoutSec = 15
	}

	if c.ToastDurationSec == 0 {
		c.ToastDurationSec = 3
	}

	return c, nil
}
