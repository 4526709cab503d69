package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/accountsclient/internal/flagx"
	"github.com/dmitrijs2005/accountsclient/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero so that a partial file only
// overrides what it names.
type JSONConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	StoragePath    *string         `json:"storage_path"`
	Language       *string         `json:"language"`
	PageSize       *int            `json:"page_size"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       *string         `json:"log_level"`
}

// parseJSON overlays cfg with the file named by -c/-config in args.
// No flag means no change.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.StoragePath != nil {
		cfg.StoragePath = *jc.StoragePath
	}
	if jc.Language != nil {
		cfg.Language = *jc.Language
	}
	if jc.PageSize != nil {
		cfg.PageSize = *jc.PageSize
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
