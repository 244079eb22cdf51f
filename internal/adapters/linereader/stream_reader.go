package linereader

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

/*
StreamReader reads lines from a non-terminal input such as a pipe or a
script file. It also serves single keys for the recall prompt by taking the
first byte of the next line, so scripted sessions can answer it.

Input is read one byte at a time and never past the end of the current
line. Programs started by the interpreter inherit the same descriptor and
must find the lines that follow untouched.
*/
type StreamReader struct {
	in  io.Reader
	out io.Writer
}

// NewStreamReader creates a StreamReader. Prompts are written to out; a nil out hides them.
func NewStreamReader(in io.Reader, out io.Writer) *StreamReader {
	if in == nil {
		panic("input reader cannot be nil")
	}
	if out == nil {
		out = io.Discard
	}
	return &StreamReader{in: in, out: out}
}

var (
	_ ports.LineReader = (*StreamReader)(nil)
	_ ports.KeyReader  = (*StreamReader)(nil)
)

// ReadLine implements ports.LineReader.
func (r *StreamReader) ReadLine(prompt string) (string, error) {
	io.WriteString(r.out, prompt)
	line, err := r.readLine()
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadKey implements ports.KeyReader. An empty line answers with '\n'.
func (r *StreamReader) ReadKey(ctx context.Context) (byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	line, err := r.readLine()
	if line == "" && err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ports.ErrNoKey
		}
		return 0, err
	}
	return line[0], nil
}

// readLine returns the bytes up to and including the next '\n'. At the end
// of input it returns what was read together with the error.
func (r *StreamReader) readLine() (string, error) {
	var (
		b strings.Builder
		c [1]byte
	)
	for {
		n, err := r.in.Read(c[:])
		if n == 1 {
			b.WriteByte(c[0])
			if c[0] == '\n' {
				return b.String(), nil
			}
		}
		if err != nil {
			return b.String(), err
		}
	}
}

// Close implements ports.LineReader.
func (r *StreamReader) Close() error {
	return nil
}
