package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/simonhull/id3tags"
	"github.com/simonhull/id3tags/internal/config"
	"github.com/simonhull/id3tags/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	logger     *slog.Logger
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
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
		logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.logger = logger
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	if c.config == nil {
		cfg := config.Default()
		return &cfg
	}
	return c.config
}

func (c *commandContext) log() *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}

// readOptions translates the [scan] section into library options.
func (c *commandContext) readOptions() []id3tags.Option {
	cfg := c.configValue()
	opts := []id3tags.Option{id3tags.WithLogger(c.log())}
	if cfg.Scan.Strict {
		opts = append(opts, id3tags.WithStrictParsing())
	}
	if cfg.Scan.MaskedTagSize {
		opts = append(opts, id3tags.WithMaskedTagSize())
	}
	if !cfg.Scan.EnhancedV1 {
		opts = append(opts, id3tags.WithoutEnhancedV1())
	}
	return opts
}
