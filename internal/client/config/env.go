package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig uses pointer fields so that only variables actually present in
// the environment overlay the config.
type envConfig struct {
	ServerBaseURL       *string        `env:"AUTOSCRIBE_SERVER_BASE_URL"`
	StorageDSN          *string        `env:"AUTOSCRIBE_STORAGE_DSN"`
	SpeechEnabled       *bool          `env:"AUTOSCRIBE_SPEECH_ENABLED"`
	LocalRedirectDelay  *time.Duration `env:"AUTOSCRIBE_LOCAL_REDIRECT_DELAY"`
	RemoteRedirectDelay *time.Duration `env:"AUTOSCRIBE_REMOTE_REDIRECT_DELAY"`
}

// parseEnv overlays Config with environment variables, loading a .env file
// first when one exists. A missing .env file is not an error. Unparseable
// values panic, matching the other loaders.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != nil {
		cfg.ServerBaseURL = *ec.ServerBaseURL
	}
	if ec.StorageDSN != nil {
		cfg.StorageDSN = *ec.StorageDSN
	}
	if ec.SpeechEnabled != nil {
		cfg.SpeechEnabled = *ec.SpeechEnabled
	}
	if ec.LocalRedirectDelay != nil {
		cfg.LocalRedirectDelay = *ec.LocalRedirectDelay
	}
	if ec.RemoteRedirectDelay != nil {
		cfg.RemoteRedirectDelay = *ec.RemoteRedirectDelay
	}
}
