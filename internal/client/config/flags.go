package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/accountsclient/internal/flagx"
)

var knownFlags = []string{"-a", "-s", "-l", "-p", "-t", "-v"}

// parseFlags populates Config fields from command-line flags. Only the flags
// listed in knownFlags are looked at, so -c/-config and anything else on the
// command line does not make parsing fail.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the account service")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "local storage file")
	fs.StringVar(&cfg.Language, "l", cfg.Language, "interface language")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "user directory page size")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
