// Package config loads runtime configuration for the Autoscribe client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), optionally from a .env file.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the auth endpoint
//	-d string   sqlite DSN of the local storage file
//	-s bool     enable speech output
//
// # JSON schema
//
// The JSON loader uses timex.Duration for delays, so values can be either
// strings like "800ms" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://localhost:5000/api",
//	  "storage_dsn": "autoscribe.db",
//	  "speech_enabled": true,
//	  "local_redirect_delay": "800ms",
//	  "remote_redirect_delay": "1s"
//	}
//
// Environment variables use the AUTOSCRIBE_ prefix, e.g.
// AUTOSCRIBE_SERVER_BASE_URL, AUTOSCRIBE_STORAGE_DSN,
// AUTOSCRIBE_SPEECH_ENABLED.
package config
