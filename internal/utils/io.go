package utils

import (
	"fmt"
	"io"
	"os"
)

// OpenInput opens name for reading. An empty name or "-" selects stdin,
// which is returned wrapped so that closing it is a no-op.
func OpenInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", name, err)
	}
	return f, nil
}

// OpenOutput creates name for writing. An empty name or "-" selects stdout.
func OpenOutput(name string) (io.WriteCloser, error) {
	if name == "" || name == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", name, err)
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
