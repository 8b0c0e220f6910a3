package main

import (
	"log/slog"
	"strings"
	"sync"

	"mpvnotes/internal/config"
	"mpvnotes/internal/logging"
	"mpvnotes/internal/player"
)

type commandContext struct {
	configFlag *string
	socketFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, socketFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		socketFlag: socketFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.socketFlag != nil && strings.TrimSpace(*c.socketFlag) != "" {
			cfg.Player.Socket = strings.TrimSpace(*c.socketFlag)
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			cfg = nil
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			logger = slog.Default()
		}
		c.logger = logger
	})
	return c.logger
}

// withPlayer constructs the configured backend, runs fn, and releases the
// IPC connection afterwards.
func (c *commandContext) withPlayer(fn func(player.Controller) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	ctrl, err := player.New(cfg)
	if err != nil {
		return err
	}
	defer ctrl.Close()
	return fn(ctrl)
}
