package ports

import (
	"context"
	"io"
)

// Streams carries the standard streams a utility reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

/*
Utility is a named command handled inside the interpreter process. It
receives the parsed argument vector (without its own name). A returned
error is reported to the user but never ends the session.
*/
type Utility interface {
	Name() string
	Description() string
	Run(ctx context.Context, args []string, streams Streams) error
}

// UtilityRegistry maps utility names to implementations.
type UtilityRegistry interface {
	Lookup(name string) (Utility, bool)
	All() []Utility
}
