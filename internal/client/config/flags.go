package config

import (
	"flag"
	"os"

	"github.com/Sharnika-sree/autoscribe/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the auth endpoint (default from Config)
//	-d string   sqlite DSN of the local storage file (default from Config)
//	-s bool     enable speech output (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the auth endpoint")
	fs.StringVar(&cfg.StorageDSN, "d", cfg.StorageDSN, "sqlite DSN of the local storage file")
	fs.BoolVar(&cfg.SpeechEnabled, "s", cfg.SpeechEnabled, "enable speech output")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
