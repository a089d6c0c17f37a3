package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called once a burst of audio file changes has settled.
// changed is the last audio file that changed.
type EventHandler func(ctx context.Context, changed string) error
