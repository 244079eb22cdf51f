package keyreader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

/*
HelperProcessReader reads a key in a short-lived child process so the
terminal mode change never touches the interpreter itself. The child
inherits the terminal as stdin and reports the key through an extra pipe
that it sees as descriptor 3.
*/
type HelperProcessReader struct {
	path  string
	args  []string
	env   []string
	stdin *os.File
}

// NewHelperProcessReader creates a reader that runs path with args for each key.
// env entries are added to the inherited environment.
func NewHelperProcessReader(path string, args []string, env []string, stdin *os.File) ports.KeyReader {
	if path == "" {
		panic("helper path cannot be empty")
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	return &HelperProcessReader{path: path, args: args, env: env, stdin: stdin}
}

// ReadKey implements ports.KeyReader.
func (r *HelperProcessReader) ReadKey(ctx context.Context) (byte, error) {
	pr, pw, err := os.Pipe()
	if err != nil {
		return 0, fmt.Errorf("creating key pipe: %w", err)
	}
	defer pr.Close()

	cmd := exec.CommandContext(ctx, r.path, r.args...)
	cmd.Stdin = r.stdin
	cmd.Stderr = os.Stderr
	cmd.ExtraFiles = []*os.File{pw}
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}

	startErr := cmd.Start()
	pw.Close()
	if startErr != nil {
		return 0, fmt.Errorf("starting key helper: %w", startErr)
	}

	buf := make([]byte, 1)
	_, readErr := io.ReadFull(pr, buf)
	waitErr := cmd.Wait()

	switch {
	case readErr == nil:
		return buf[0], nil
	case ctx.Err() != nil:
		return 0, ctx.Err()
	case !errors.Is(readErr, io.EOF) && !errors.Is(readErr, io.ErrUnexpectedEOF):
		return 0, readErr
	case waitErr != nil:
		return 0, fmt.Errorf("%w: helper %v", ports.ErrNoKey, waitErr)
	default:
		return 0, ports.ErrNoKey
	}
}
