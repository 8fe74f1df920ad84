package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Sharnika-sree/autoscribe/internal/flagx"
	"github.com/Sharnika-sree/autoscribe/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify delays either as strings like "800ms"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerBaseURL       string         `json:"server_base_url"`
	StorageDSN          string         `json:"storage_dsn"`
	SpeechEnabled       *bool          `json:"speech_enabled"`
	LocalRedirectDelay  timex.Duration `json:"local_redirect_delay"`
	RemoteRedirectDelay timex.Duration `json:"remote_redirect_delay"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flag via flagx.JsonConfigFlags; when no
// flag is given nothing is loaded. Read or unmarshal errors panic, callers
// recover if desired.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.StorageDSN != "" {
		cfg.StorageDSN = jc.StorageDSN
	}
	if jc.SpeechEnabled != nil {
		cfg.SpeechEnabled = *jc.SpeechEnabled
	}
	if jc.LocalRedirectDelay.Duration > 0 {
		cfg.LocalRedirectDelay = time.Duration(jc.LocalRedirectDelay.Duration)
	}
	if jc.RemoteRedirectDelay.Duration > 0 {
		cfg.RemoteRedirectDelay = time.Duration(jc.RemoteRedirectDelay.Duration)
	}
}
