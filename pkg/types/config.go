package types

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Base URL of the Sunning REST API, e.g. https://api.sunning.earth
	APIBaseURL string `envconfig:"API_BASE_URL"`

	HTTPTimeoutSec uint `envconfig:"HTTP_TIMEOUT_SEC" default:"15"`

	// Path of the persisted session file. Empty means
	// $HOME/.sunning/session.json
	SessionFile string `envconfig:"SESSION_FILE"`

	// Seconds a toast stays visible before auto-dismissing
	ToastDurationSec uint `envconfig:"TOAST_DURATION_SEC" default:"3"`
}
