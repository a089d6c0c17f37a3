package probe

import (
	"github.com/nguyentantai21042004/chapterstamp/internal/logger"
	"github.com/nguyentantai21042004/chapterstamp/pkg/executor"
)

type implResolver struct {
	binary   string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Resolver that asks ffprobe for container durations.
func New(binary string, exec executor.Executor, log logger.Logger) Resolver {
	if binary == "" {
		binary = "ffprobe"
	}
	return &implResolver{
		binary:   binary,
		executor: exec,
		logger:   log,
	}
}
