package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ---------------------------------------------------------------------------
// PDF Output
// ---------------------------------------------------------------------------

var errTerminal = errors.New("refusing to write a PDF to a terminal, use -o")

// writePDF stores data in path, or writes it to stdout when path is empty.
func writePDF(data []byte, path string, stdout *os.File) error {
	if path != "" {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	}
	if term.IsTerminal(int(stdout.Fd())) {
		return errTerminal
	}
	_, err := stdout.Write(data)
	return err
}
