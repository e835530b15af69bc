package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/moodscreen/internal/flagx"
	"github.com/dmitrijs2005/moodscreen/internal/timex"
)

// JsonConfig is the on-disk shape. Pointer fields distinguish "absent" from
// a zero value so a partial file only overrides what it names.
type JsonConfig struct {
	BaseURL     *string         `json:"base_url"`
	Timeout     *timex.Duration `json:"timeout"`
	StoragePath *string         `json:"storage_path"`
	Verbose     *bool           `json:"verbose"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
// Read and decode errors panic; LoadConfig runs before anything else exists.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.Timeout != nil {
		cfg.Timeout = jc.Timeout.Duration
	}
	if jc.StoragePath != nil {
		cfg.StoragePath = *jc.StoragePath
	}
	if jc.Verbose != nil {
		cfg.Verbose = *jc.Verbose
	}
}
