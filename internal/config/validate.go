package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDefaults(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDefaults() error {
	switch c.Defaults.OnError {
	case "pass", "log", "raise":
	default:
		return fmt.Errorf("defaults.on_error must be one of pass, log, raise; got %q", c.Defaults.OnError)
	}
	switch c.Defaults.EOL {
	case "", "lf", "crlf", "cr":
	default:
		return fmt.Errorf("defaults.eol must be one of lf, crlf, cr; got %q", c.Defaults.EOL)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json; got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) normalize() {
	c.Defaults.Encoding = strings.TrimSpace(c.Defaults.Encoding)
	c.Defaults.EOL = strings.ToLower(strings.TrimSpace(c.Defaults.EOL))
	c.Defaults.OnError = strings.ToLower(strings.TrimSpace(c.Defaults.OnError))
	if c.Defaults.OnError == "" {
		c.Defaults.OnError = defaultOnError
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
