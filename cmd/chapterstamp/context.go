package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/chapterstamp/internal/config"
	"github.com/nguyentantai21042004/chapterstamp/internal/logger"
	"github.com/nguyentantai21042004/chapterstamp/internal/probe"
	"github.com/nguyentantai21042004/chapterstamp/internal/processor"
	"github.com/nguyentantai21042004/chapterstamp/pkg/executor"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	logger     logger.Logger
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		if err := config.LoadDotEnv(".env"); err != nil {
			c.configErr = err
			return
		}

		path := ""
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		if path == "" {
			if _, err := os.Stat(config.DefaultFile); err == nil {
				path = config.DefaultFile
			} else if !errors.Is(err, fs.ErrNotExist) {
				c.configErr = fmt.Errorf("inspect %s: %w", config.DefaultFile, err)
				return
			}
		}

		cfg, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}

		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			level := strings.TrimSpace(*c.logLevelFlag)
			if !logger.ValidLevel(level) {
				c.configErr = fmt.Errorf("unknown log level %q", level)
				return
			}
			cfg.Logging.Level = level
		}

		c.config = cfg
		c.logger = logger.New(cfg.Logging.Level)
	})
	return c.config, c.configErr
}

func (c *commandContext) newResolver() (probe.Resolver, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return probe.New(cfg.FFprobe.BinaryPath, executor.New(), c.logger), nil
}

func (c *commandContext) newProcessor() (processor.Processor, error) {
	resolver, err := c.newResolver()
	if err != nil {
		return nil, err
	}
	return processor.New(c.config, resolver, c.logger), nil
}
