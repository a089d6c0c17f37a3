package processor

import (
	"errors"

	"github.com/nguyentantai21042004/chapterstamp/internal/config"
	"github.com/nguyentantai21042004/chapterstamp/internal/logger"
	"github.com/nguyentantai21042004/chapterstamp/internal/probe"
)

var (
	// ErrNoAudioFiles is returned when the folder holds no audio files.
	ErrNoAudioFiles = errors.New("no audio files found")
	// ErrCancelled is returned when a mismatch warning is declined.
	ErrCancelled = errors.New("generation cancelled")
)

type implProcessor struct {
	cfg      *config.Config
	resolver probe.Resolver
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, resolver probe.Resolver, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		resolver: resolver,
		logger:   log,
	}
}
