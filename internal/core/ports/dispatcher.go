package ports

import (
	"context"

	"github.com/AntonioJCosta/shellfyre/internal/core/domain/command"
	"github.com/AntonioJCosta/shellfyre/internal/core/domain/execution"
)

// Dispatcher decides how a parsed chain is handled: in-process builtin,
// utility, or the pipeline executor.
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd *command.Command) execution.Result

	// LastStatus is the exit status of the most recent foreground chain run
	// by the pipeline executor, 0 before any has run.
	LastStatus() int
}

// Session is the interactive read-parse-dispatch loop.
type Session interface {
	// Run loops until exit or end of input and returns the status of the
	// last external command.
	Run(ctx context.Context) (int, error)

	// RunLine processes a single line as if it had been typed.
	RunLine(ctx context.Context, line string) execution.Result
}
