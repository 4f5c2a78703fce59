package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	BoardPath string // .hcl board definition

	OutPath   string // export destination, empty disables export
	OutFormat string // "json" or "dot"
	ServePort int    // HTTP graph server port, 0 disabled
	Workers   int    // frontier expansion workers, 1 is sequential

	LogFormat string
	LogLevel  string
}

// NewConfig validates and normalizes a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.BoardPath == "" {
		return nil, errors.New("BoardPath is a required configuration field and cannot be empty")
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &cfg, nil
}
