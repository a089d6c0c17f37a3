package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/chapterstamp/internal/logger"
)

type Config struct {
	FFprobe     FFprobeConfig     `yaml:"ffprobe"`
	Library     LibraryConfig     `yaml:"library"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Watch       WatchConfig       `yaml:"watch"`
	Performance PerformanceConfig `yaml:"performance"`
}

type FFprobeConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type LibraryConfig struct {
	Extensions []string `yaml:"extensions"`
	SortBy     string   `yaml:"sort_by"`
}

type OutputConfig struct {
	// Path is where the chapter list is written. Empty means
	// <folder>/<FileName>; "-" means stdout only.
	Path     string `yaml:"path"`
	FileName string `yaml:"file_name"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

type PerformanceConfig struct {
	MaxConcurrentProbes int `yaml:"max_concurrent_probes"`
}

const (
	SortByName    = "name"
	SortByModTime = "mtime"
)

// DefaultExtensions are the audio formats picked up from a folder.
var DefaultExtensions = []string{".wav", ".mp3", ".m4a", ".flac", ".ogg", ".aac"}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	// defaults never fail validation
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.FFprobe.BinaryPath == "" {
		c.FFprobe.BinaryPath = "ffprobe"
	}
	if len(c.Library.Extensions) == 0 {
		c.Library.Extensions = append([]string(nil), DefaultExtensions...)
	}
	for i, ext := range c.Library.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			return fmt.Errorf("library.extensions[%d] is empty", i)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Library.Extensions[i] = ext
	}

	c.Library.SortBy = strings.ToLower(strings.TrimSpace(c.Library.SortBy))
	switch c.Library.SortBy {
	case "":
		c.Library.SortBy = SortByName
	case SortByName, SortByModTime:
	default:
		return fmt.Errorf("library.sort_by must be %q or %q, got %q", SortByName, SortByModTime, c.Library.SortBy)
	}

	if c.Output.FileName == "" {
		c.Output.FileName = "chapters.txt"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if !logger.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = time.Second
	}
	if c.Performance.MaxConcurrentProbes < 0 {
		return fmt.Errorf("performance.max_concurrent_probes must not be negative")
	}
	if c.Performance.MaxConcurrentProbes == 0 {
		c.Performance.MaxConcurrentProbes = 4
	}

	return nil
}
