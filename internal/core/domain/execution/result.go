/*
Package execution defines the outcome of processing one input line.
*/
package execution

import (
	"errors"
	"fmt"
)

// Result is what the dispatcher hands back to the interactive loop.
type Result int

const (
	Success Result = iota // line handled, keep reading
	Exit                  // terminate the session
	Unknown               // command could not be resolved or executed
)

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case Exit:
		return "exit"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}

// ErrCommandNotFound is returned when a program name cannot be resolved on the search path.
var ErrCommandNotFound = errors.New("command not found")

// StageError attributes a launch failure to one stage of a chain.
type StageError struct {
	Stage string // the stage's program name
	Index int    // position in the chain, 0 for the head
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}
