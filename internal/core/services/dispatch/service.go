package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/AntonioJCosta/shellfyre/internal/core/domain/command"
	"github.com/AntonioJCosta/shellfyre/internal/core/domain/execution"
	"github.com/AntonioJCosta/shellfyre/internal/core/domain/history"
	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// SystemName prefixes every diagnostic: "-shellfyre: cd: ...".
const SystemName = "shellfyre"

// Builtin describes a command the dispatcher handles itself.
type Builtin struct {
	Name        string
	Description string
}

// Builtins lists the commands handled before any utility or program lookup.
var Builtins = []Builtin{
	{Name: "cd", Description: "change directory: cd [path] (home without a path)"},
	{Name: "exit", Description: "leave the interpreter"},
}

type service struct {
	history  *history.DirHistory
	registry ports.UtilityRegistry
	executor ports.PipelineExecutor
	finder   ports.ExecutableFinder
	streams  ports.Streams

	lastStatus int
}

// NewService creates the builtin dispatcher.
// It panics if any collaborator is nil.
func NewService(
	h *history.DirHistory,
	registry ports.UtilityRegistry,
	executor ports.PipelineExecutor,
	finder ports.ExecutableFinder,
	streams ports.Streams,
) ports.Dispatcher {
	if h == nil {
		panic("directory history cannot be nil")
	}
	if registry == nil {
		panic("utility registry cannot be nil")
	}
	if executor == nil {
		panic("pipeline executor cannot be nil")
	}
	if finder == nil {
		panic("executable finder cannot be nil")
	}
	return &service{
		history:  h,
		registry: registry,
		executor: executor,
		finder:   finder,
		streams:  streams,
	}
}

/*
Dispatch handles one parsed chain. Only the head's name is inspected:
builtins and utilities run in-process on the head stage, anything else
goes to the pipeline executor with the whole chain. Every outcome except
"exit" and an executor failure is Success; failures are reported on the
error stream and never end the session.
*/
func (s *service) Dispatch(ctx context.Context, cmd *command.Command) execution.Result {
	if cmd.IsBlank() {
		return execution.Success
	}
	if cmd.AutoComplete {
		s.complete(cmd)
		return execution.Success
	}

	switch cmd.Name {
	case "":
		return execution.Success
	case "exit":
		return execution.Exit
	case "cd":
		s.changeDir(cmd.Args)
		return execution.Success
	}

	if u, ok := s.registry.Lookup(cmd.Name); ok {
		// An interrupted utility has nothing to report.
		if err := u.Run(ctx, cmd.Args, s.streams); err != nil && !errors.Is(err, context.Canceled) {
			s.report(cmd.Name, reason(err))
		}
		return execution.Success
	}

	status, err := s.executor.Execute(ctx, cmd)
	if err != nil {
		name := cmd.Name
		var stageErr *execution.StageError
		if errors.As(err, &stageErr) {
			name = stageErr.Stage
		}
		s.report(name, reason(err))
		return execution.Unknown
	}
	s.lastStatus = status
	return execution.Success
}

func (s *service) LastStatus() int {
	return s.lastStatus
}

// changeDir moves to args[0], or home without arguments. The directory being
// left is recorded only when the change succeeds.
func (s *service) changeDir(args []string) {
	target := ""
	if len(args) > 0 {
		target = args[0]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			s.report("cd", "HOME not set")
			return
		}
		target = home
	}

	prev, wdErr := os.Getwd()
	if err := os.Chdir(target); err != nil {
		s.report("cd", reason(err))
		return
	}
	if wdErr == nil {
		s.history.Push(prev)
	}
}

func (s *service) report(name, reason string) {
	fmt.Fprintf(s.streams.Err, "-%s: %s: %s\n", SystemName, name, reason)
}

// reason extracts the user-facing part of err: the OS reason for path
// errors, a fixed phrase for unresolved programs, the message otherwise.
func reason(err error) string {
	if errors.Is(err, execution.ErrCommandNotFound) {
		return execution.ErrCommandNotFound.Error()
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	var stageErr *execution.StageError
	if errors.As(err, &stageErr) {
		return stageErr.Err.Error()
	}
	return err.Error()
}
