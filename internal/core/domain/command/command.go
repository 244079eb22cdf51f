/*
Package command defines the chain of pipeline stages produced by the parser
and consumed by the dispatcher and the executor.
*/
package command

import (
	"strings"
)

// RedirectSlot indexes Command.Redirects.
type RedirectSlot int

const (
	Stdin  RedirectSlot = iota // "<file"
	Stdout                     // ">file" (truncate)
	Append                     // ">>file"
)

// String returns the operator the slot is written with on the command line.
func (s RedirectSlot) String() string {
	switch s {
	case Stdin:
		return "<"
	case Stdout:
		return ">"
	case Append:
		return ">>"
	default:
		return "?"
	}
}

/*
Command is one stage of a pipe chain. Next points at the following stage; a
chain of length one is a plain command. An empty Name means blank input.

Background and AutoComplete describe the whole line and are set on every
stage of the chain, so the head alone is enough to decide how to run it.
*/
type Command struct {
	Name         string
	Args         []string // without Name
	Background   bool
	AutoComplete bool
	Redirects    [3]string // indexed by RedirectSlot, "" when unset
	Next         *Command
}

// Stages flattens the chain starting at c. A nil receiver yields no stages.
func (c *Command) Stages() []*Command {
	var stages []*Command
	for s := c; s != nil; s = s.Next {
		stages = append(stages, s)
	}
	return stages
}

// Len returns the number of stages in the chain.
func (c *Command) Len() int {
	n := 0
	for s := c; s != nil; s = s.Next {
		n++
	}
	return n
}

// Argv returns the argument vector handed to the operating system: Name followed by Args.
func (c *Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Name)
	return append(argv, c.Args...)
}

// Redirect returns the path bound to slot and whether it is set.
func (c *Command) Redirect(slot RedirectSlot) (string, bool) {
	p := c.Redirects[slot]
	return p, p != ""
}

// IsBlank reports whether the chain is the no-op produced by an empty line.
func (c *Command) IsBlank() bool {
	return c == nil || (c.Name == "" && c.Next == nil)
}

// String renders the chain back into command-line form.
func (c *Command) String() string {
	var b strings.Builder
	for s := c; s != nil; s = s.Next {
		if s != c {
			b.WriteString(" | ")
		}
		b.WriteString(strings.Join(s.Argv(), " "))
		for slot := Stdin; slot <= Append; slot++ {
			if p, ok := s.Redirect(slot); ok {
				b.WriteString(" " + slot.String() + p)
			}
		}
	}
	if c != nil && c.Background {
		b.WriteString(" &")
	}
	return b.String()
}
