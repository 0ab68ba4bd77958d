package config

import (
	"errors"
	"fmt"

	"dat2lpl/internal/romset"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRomset(); err != nil {
		return err
	}
	if err := c.validateRegions(); err != nil {
		return err
	}
	if err := c.validateValidation(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateRomset() error {
	if _, err := romset.ParseArchiveFormat(c.Romset.ArchiveFormat); err != nil {
		return fmt.Errorf("romset.archive_format: %w", err)
	}
	if _, err := romset.ParseStorageMode(c.Romset.StorageMode); err != nil {
		return fmt.Errorf("romset.storage_mode: %w", err)
	}
	return nil
}

func (c *Config) validateRegions() error {
	if c.Regions.MapFile != "" && !c.Regions.Split {
		return errors.New("regions.map_file requires regions.split to be enabled")
	}
	return nil
}

func (c *Config) validateValidation() error {
	if c.Validation.TimeoutSeconds <= 0 {
		return errors.New("validation.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
