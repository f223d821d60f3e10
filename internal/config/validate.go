package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	if c.Scan.Workers < 0 {
		return errors.New("scan.workers must be zero (one per CPU) or positive")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("output.format: unsupported value %q (want table or json)", c.Output.Format)
	}
	switch c.Output.Style {
	case "rounded", "light", "plain":
	default:
		return fmt.Errorf("output.style: unsupported value %q (want rounded, light or plain)", c.Output.Style)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
