package config

import "time"

// Config holds runtime settings for the Autoscribe client.
//
// Fields:
//   - ServerBaseURL: base URL of the remote auth endpoint.
//   - StorageDSN: sqlite DSN of the local storage file.
//   - SpeechEnabled: whether announcements are spoken.
//   - LocalRedirectDelay / RemoteRedirectDelay: pause between a successful
//     submit and the dashboard redirect.
type Config struct {
	ServerBaseURL       string
	StorageDSN          string
	SpeechEnabled       bool
	LocalRedirectDelay  time.Duration
	RemoteRedirectDelay time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:5000/api"
	c.StorageDSN = "autoscribe.db"
	c.SpeechEnabled = true
	c.LocalRedirectDelay = 800 * time.Millisecond
	c.RemoteRedirectDelay = 1000 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
