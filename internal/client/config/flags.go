package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/moodscreen/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only -a, -d and -v are looked at; everything else in os.Args is left to
// other parsers.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], flagx.Owned{
		Value: []string{"-a", "-d"},
		Bool:  []string{"-v"},
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "backend API base URL")
	fs.StringVar(&cfg.StoragePath, "d", cfg.StoragePath, "local storage file")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
