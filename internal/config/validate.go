package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePlayer(); err != nil {
		return err
	}
	if err := c.validateNotes(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePlayer() error {
	switch c.Player.Backend {
	case "attached", "managed":
	default:
		return fmt.Errorf("player.backend must be %q or %q, got %q", "attached", "managed", c.Player.Backend)
	}
	if c.Player.SettleMillis > 10_000 {
		return errors.New("player.settle_ms above 10000 makes every command crawl; lower it")
	}
	return nil
}

func (c *Config) validateNotes() error {
	if c.Notes.LagSeconds < 0 {
		return errors.New("notes.lag_seconds must not be negative")
	}
	if c.Notes.FillWidth < 20 {
		return errors.New("notes.fill_width below 20 produces unreadable output")
	}
	if c.Notes.HeadingLevel > 8 {
		return errors.New("notes.heading_level must be 8 or less")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be %q or %q, got %q", "console", "json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}
