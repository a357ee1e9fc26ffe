package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store persisted as a single JSON object in a file.
//
// The file and its folder are created on the first Set. The whole document
// is rewritten on each Set, through a temporary file renamed over the
// previous one.
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile returns a File store at path. Nothing is read until needed.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the file location.
func (f *File) Path() string { return f.path }

// read returns the current document, empty if the file does not exist.
func (f *File) read() (map[string]string, error) {
	values := make(map[string]string)
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read preferences %q: %w", f.path, err)
	}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("format error in preferences %q: %w", f.path, err)
	}
	return values, nil
}

func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.read()
	if err != nil {
		return err
	}
	values[key] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("cannot create preferences folder: %w", err)
	}
	// each writer gets its own temporary file, other processes may save too.
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot write preferences %q: %w", f.path, err)
	}
	if err := writeAndRename(tmp, append(data, '\n'), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot write preferences %q: %w", f.path, err)
	}
	return nil
}

// writeAndRename writes data to tmp, closes it and moves it to path.
func writeAndRename(tmp *os.File, data []byte, path string) error {
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
