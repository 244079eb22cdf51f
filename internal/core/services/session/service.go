package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/shellfyre/internal/core/domain/execution"
	"github.com/AntonioJCosta/shellfyre/internal/core/domain/job"
	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// Options holds the presentation settings of a session.
type Options struct {
	// Prompt renders the prompt before each line. Nil means no prompt.
	Prompt func() string
	// Out receives job notices and debug dumps.
	Out io.Writer
	// Debug prints every parsed chain before it is dispatched.
	Debug bool
	// LineContext derives the context one line runs under. The interpreter
	// cancels it to interrupt in-process utilities. Nil means context.WithCancel.
	LineContext func(parent context.Context) (context.Context, context.CancelFunc)
}

type service struct {
	reader     ports.LineReader
	parser     ports.CommandParser
	dispatcher ports.Dispatcher
	jobs       ports.JobTable
	opts       Options
}

// NewService creates the interactive loop.
// It panics if any collaborator is nil.
func NewService(
	reader ports.LineReader,
	parser ports.CommandParser,
	dispatcher ports.Dispatcher,
	jobs ports.JobTable,
	opts Options,
) ports.Session {
	if reader == nil {
		panic("line reader cannot be nil")
	}
	if parser == nil {
		panic("command parser cannot be nil")
	}
	if dispatcher == nil {
		panic("dispatcher cannot be nil")
	}
	if jobs == nil {
		panic("job table cannot be nil")
	}
	if opts.Prompt == nil {
		opts.Prompt = func() string { return "" }
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.LineContext == nil {
		opts.LineContext = context.WithCancel
	}
	return &service{reader: reader, parser: parser, dispatcher: dispatcher, jobs: jobs, opts: opts}
}

/*
Run reads, parses and dispatches lines until "exit" or the end of input.
Finished background jobs are reaped and announced before every prompt.
*/
func (s *service) Run(ctx context.Context) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return s.dispatcher.LastStatus(), err
		}
		s.reapJobs()

		line, err := s.reader.ReadLine(s.opts.Prompt())
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.opts.Out)
			return s.dispatcher.LastStatus(), nil
		}
		if err != nil {
			return s.dispatcher.LastStatus(), fmt.Errorf("reading input: %w", err)
		}

		if s.RunLine(ctx, line) == execution.Exit {
			return s.dispatcher.LastStatus(), nil
		}
	}
}

func (s *service) RunLine(ctx context.Context, line string) execution.Result {
	cmd := s.parser.Parse(line)
	if s.opts.Debug && !cmd.IsBlank() {
		cmd.Describe(s.opts.Out)
	}

	lineCtx, cancel := s.opts.LineContext(ctx)
	defer cancel()
	return s.dispatcher.Dispatch(lineCtx, cmd)
}

func (s *service) reapJobs() {
	for _, j := range s.jobs.Reap() {
		fmt.Fprintln(s.opts.Out, doneNotice(j))
	}
}

func doneNotice(j job.Job) string {
	if j.ExitCode != 0 {
		return fmt.Sprintf("[%d] Exit %d %s", j.ID, j.ExitCode, j.Line)
	}
	return fmt.Sprintf("[%d] Done %s", j.ID, j.Line)
}
