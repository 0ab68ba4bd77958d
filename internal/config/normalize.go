package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeRomset()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.ROMRoot, err = expandPath(strings.TrimSpace(c.Paths.ROMRoot)); err != nil {
		return fmt.Errorf("paths.rom_root: %w", err)
	}
	c.Paths.Output = strings.TrimSpace(c.Paths.Output)
	if c.Paths.Output == "" {
		c.Paths.Output = defaultOutput
	}
	if c.Regions.MapFile, err = expandPath(strings.TrimSpace(c.Regions.MapFile)); err != nil {
		return fmt.Errorf("regions.map_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeRomset() {
	c.Romset.ArchiveFormat = strings.ToLower(strings.TrimSpace(c.Romset.ArchiveFormat))
	if c.Romset.ArchiveFormat == "" {
		c.Romset.ArchiveFormat = defaultArchiveFormat
	}
	c.Romset.StorageMode = strings.ToLower(strings.TrimSpace(c.Romset.StorageMode))
	if c.Romset.StorageMode == "" {
		c.Romset.StorageMode = defaultStorageMode
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
