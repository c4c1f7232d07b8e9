package config

import "fmt"

// LoggingConfig names an output level and format. Load fills in defaults and
// validates both, but app.New does not pass them to infra/logger, which
// takes its format from APP_ENV and does not filter by level.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `json:"level"`
	// Format is "console" (human-readable) or "json".
	Format string `json:"format"`
}

// SetDefaults applies fallback values for optional fields.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}
}

// Validate checks that the configured level and format are recognized.
func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %s", c.Level)
	}
	switch c.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %s", c.Format)
	}
	return nil
}
