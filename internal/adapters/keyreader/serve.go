package keyreader

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// readRawKey reads one byte from in. When in is a terminal it is switched to
// raw mode for the read so the key arrives without waiting for Enter.
func readRawKey(in *os.File) (byte, error) {
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return 0, fmt.Errorf("entering raw mode: %w", err)
		}
		defer term.Restore(fd, state)
	}

	buf := make([]byte, 1)
	if _, err := io.ReadFull(in, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, ports.ErrNoKey
		}
		return 0, err
	}
	return buf[0], nil
}

// ServeKey is the body of the key helper process: it reads a single key from
// in and writes it to out.
func ServeKey(in *os.File, out io.Writer) error {
	key, err := readRawKey(in)
	if err != nil {
		return err
	}
	_, err = out.Write([]byte{key})
	return err
}

// DirectReader switches the interpreter's own terminal to raw mode for one read.
type DirectReader struct {
	in *os.File
}

// NewDirectReader creates a DirectReader over in.
func NewDirectReader(in *os.File) ports.KeyReader {
	if in == nil {
		panic("input file cannot be nil")
	}
	return &DirectReader{in: in}
}

// ReadKey implements ports.KeyReader.
func (r *DirectReader) ReadKey(ctx context.Context) (byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return readRawKey(r.in)
}
