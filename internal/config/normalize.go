package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizePlayer()
	c.normalizeNotes()
	c.normalizeOCR()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.ShotDir) == "" {
		c.Paths.ShotDir = defaultShotDir
	}
	if c.Paths.ShotDir, err = expandPath(c.Paths.ShotDir); err != nil {
		return fmt.Errorf("paths.shot_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.NotesFile) != "" {
		if c.Paths.NotesFile, err = expandPath(c.Paths.NotesFile); err != nil {
			return fmt.Errorf("paths.notes_file: %w", err)
		}
	} else {
		c.Paths.NotesFile = ""
	}
	return nil
}

func (c *Config) normalizePlayer() {
	c.Player.Backend = strings.ToLower(strings.TrimSpace(c.Player.Backend))
	if c.Player.Backend == "" {
		c.Player.Backend = defaultPlayerBackend
	}
	c.Player.Binary = strings.TrimSpace(c.Player.Binary)
	if c.Player.Binary == "" {
		c.Player.Binary = defaultPlayerBinary
	}
	c.Player.Socket = strings.TrimSpace(c.Player.Socket)
	if c.Player.Socket == "" {
		c.Player.Socket = defaultPlayerSocket
	}
	if c.Player.SettleMillis <= 0 {
		c.Player.SettleMillis = defaultSettleMillis
	}
}

func (c *Config) normalizeNotes() {
	c.Notes.LinkScheme = strings.TrimSpace(c.Notes.LinkScheme)
	if c.Notes.LinkScheme == "" {
		c.Notes.LinkScheme = defaultLinkScheme
	}
	if c.Notes.FillWidth <= 0 {
		c.Notes.FillWidth = defaultFillWidth
	}
	if c.Notes.HeadingLevel <= 0 {
		c.Notes.HeadingLevel = defaultHeadingLevel
	}
}

func (c *Config) normalizeOCR() {
	c.OCR.Binary = strings.TrimSpace(c.OCR.Binary)
	if c.OCR.Binary == "" {
		c.OCR.Binary = defaultOCRBinary
	}
	c.OCR.Languages = strings.TrimSpace(c.OCR.Languages)
	if c.OCR.Languages == "" {
		c.OCR.Languages = defaultOCRLanguages
	}
	if c.OCR.TimeoutSeconds <= 0 {
		c.OCR.TimeoutSeconds = defaultOCRTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
