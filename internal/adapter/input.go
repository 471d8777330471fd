// Package adapter contains the infrastructure adapters for the
// almanac CLI.
package adapter

import (
	"fmt"
	"io"
	"os"
)

// InputAdapter abstracts where puzzle input comes from so command
// logic can be tested without touching the disk.
type InputAdapter interface {
	// Read loads the whole input into memory. An empty path reads
	// from the fallback reader (stdin in production).
	Read(path string) (string, error)
}

// LocalInputAdapter reads puzzle input from the local filesystem,
// falling back to a reader when no path is given.
type LocalInputAdapter struct {
	Fallback io.Reader
}

// NewLocalInputAdapter constructs an adapter reading files from disk
// and stdin when no path is supplied.
func NewLocalInputAdapter() *LocalInputAdapter {
	return &LocalInputAdapter{Fallback: os.Stdin}
}

// Read returns the full contents of the input file, or of the
// fallback reader when path is empty.
func (a *LocalInputAdapter) Read(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(a.Fallback)
		if err != nil {
			return "", fmt.Errorf("read input stream: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input file: %w", err)
	}

	return string(data), nil
}
