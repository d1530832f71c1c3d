package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Duration  string // raw duration string (positional argument)
	Message   string // optional line under the clock
	FontName  string // glyph set to render with
	FontsPath string // optional directory of custom font manifests
	SoundPath string // optional wav file to play on completion
	Bell      bool   // ring the terminal bell on completion
	ListFonts bool   // list fonts and exit instead of running a timer

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Duration == "" && !cfg.ListFonts {
		return nil, errors.New("Duration is a required configuration field and cannot be empty")
	}
	if cfg.FontName == "" {
		return nil, errors.New("FontName is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
