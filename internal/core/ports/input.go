package ports

import (
	"context"
	"errors"
)

// LineReader produces raw input lines for the interactive loop.
type LineReader interface {
	// ReadLine shows prompt and returns one trimmed line. A trailing '?'
	// signals that auto-complete was requested. It returns io.EOF when the
	// input ends.
	ReadLine(prompt string) (string, error)
	Close() error
}

// KeyReader reads a single keystroke for the directory recall prompt.
type KeyReader interface {
	ReadKey(ctx context.Context) (byte, error)
}

// ErrNoKey is returned by a KeyReader when input ended before a key was pressed.
var ErrNoKey = errors.New("no key pressed")
