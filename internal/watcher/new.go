package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/chapterstamp/internal/logger"
)

// New creates a Watcher on dir that calls handler after changes to files
// with one of extensions have been quiet for debounce.
func New(dir string, extensions []string, handler EventHandler, log logger.Logger, debounce time.Duration) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if debounce <= 0 {
		debounce = time.Second
	}

	return &implWatcher{
		dir:        dir,
		extensions: extensions,
		handler:    handler,
		logger:     log,
		watcher:    watcher,
		debounce:   debounce,
	}, nil
}
