package linereader

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/chzyer/readline"

	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// ReadlineReader edits lines on a terminal. Tab submits the current line
// with a trailing '?' so the interpreter can list completions for it.
type ReadlineReader struct {
	rl     *readline.Instance
	tabbed atomic.Bool
}

// NewReadlineReader creates a ReadlineReader keeping historyLimit lines of in-memory history.
func NewReadlineReader(historyLimit int) (ports.LineReader, error) {
	r := &ReadlineReader{}
	rl, err := readline.NewEx(&readline.Config{
		HistoryLimit:        historyLimit,
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		FuncFilterInputRune: r.filterRune,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing line editor: %w", err)
	}
	r.rl = rl
	return r, nil
}

func (r *ReadlineReader) filterRune(c rune) (rune, bool) {
	if c == readline.CharTab {
		r.tabbed.Store(true)
		return readline.CharEnter, true
	}
	return c, true
}

// ReadLine implements ports.LineReader. Ctrl-C discards the line being edited
// and yields an empty line; Ctrl-D on an empty line yields io.EOF.
func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	r.tabbed.Store(false)

	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return submitted(line, r.tabbed.Swap(false)), nil
}

// submitted trims an edited line. A Tab-submitted line keeps its trailing
// whitespace in front of the '?' so a word just started stays visible.
func submitted(line string, tabbed bool) string {
	if !tabbed {
		return strings.TrimSpace(line)
	}
	return strings.TrimLeft(line, " \t") + "?"
}

// Close restores the terminal.
func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}
