package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey is the HMAC key the client uses to sign admin write bodies.
	HashKey string
	// AdminPassword, when set, skips the interactive password prompt.
	AdminPassword string `env:"QUIZ_ADMIN_PASSWORD"`
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the HTTP base URL of the quiz server.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level configuration of the admin CLI.
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the server address and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the admin CLI configuration.
//
// Unlike [GetStructuredConfig] it does not parse command-line flags, because
// the CLI owns its own sub-command arguments, and it does not require the
// server secrets. Sources are defaults, environment variables and the
// optional JSON file named by CONFIG.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}
	if err := parseEnv(&clientCfg.App); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return clientCfg, clientCfg.validate()
}
