// Package prefs persists user preferences in a key-value store.
//
// The dashboard only remembers the last selected month, through
// MonthPreference. Stores are interchangeable: Memory for a single process,
// File for a document on disk, Redis for a shared server.
package prefs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Store is a string key-value store.
type Store interface {
	// Get returns the value of key. ok is false when key was never set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value for key.
	Set(ctx context.Context, key, value string) error
}

// DefaultPath returns the default location of the preference file.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "dashboard", "prefs.json")
}

// Open returns the store described by location:
//   - "memory": a process-local store.
//   - "file:<path>": a JSON document at path.
//   - "redis://…" or "rediss://…": a redis server, see redis.ParseURL.
//   - "": the JSON document at DefaultPath.
func Open(location string) (Store, error) {
	switch {
	case location == "":
		return NewFile(DefaultPath()), nil
	case location == "memory":
		return NewMemory(), nil
	case strings.HasPrefix(location, "file:"):
		path := strings.TrimPrefix(location, "file:")
		if path == "" {
			return nil, fmt.Errorf("invalid preference location %q: missing path", location)
		}
		return NewFile(path), nil
	case strings.HasPrefix(location, "redis://"), strings.HasPrefix(location, "rediss://"):
		opts, err := redis.ParseURL(location)
		if err != nil {
			return nil, fmt.Errorf("invalid preference location %q: %w", location, err)
		}
		return NewRedis(redis.NewClient(opts)), nil
	default:
		return nil, fmt.Errorf("invalid preference location %q: want memory, file:<path> or redis://<addr>", location)
	}
}
