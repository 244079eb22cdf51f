package oscommand

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/AntonioJCosta/shellfyre/internal/core/domain/command"
	"github.com/AntonioJCosta/shellfyre/internal/core/domain/execution"
	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// Streams are the descriptors a stage inherits when neither a pipe nor a redirect replaces them.
type Streams struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

// StdStreams returns the interpreter's own standard streams.
func StdStreams() Streams {
	return Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// PipelineExecutor runs command chains as child processes connected by anonymous pipes.
type PipelineExecutor struct {
	finder  ports.ExecutableFinder
	streams Streams
	jobs    *JobTable
	notices io.Writer // receives "[id] pid" when a background chain starts
}

// NewPipelineExecutor creates a PipelineExecutor. It panics if finder is nil.
func NewPipelineExecutor(finder ports.ExecutableFinder, streams Streams, jobs *JobTable) *PipelineExecutor {
	if finder == nil {
		panic("executable finder cannot be nil")
	}
	if jobs == nil {
		jobs = NewJobTable()
	}
	return &PipelineExecutor{
		finder:  finder,
		streams: streams,
		jobs:    jobs,
		notices: streams.Stderr,
	}
}

// WithNotices sends the "[id] pid" line printed for a background chain to w
// instead of the error stream. It returns e.
func (e *PipelineExecutor) WithNotices(w io.Writer) *PipelineExecutor {
	if w != nil {
		e.notices = w
	}
	return e
}

// Jobs returns the table background chains are recorded in.
func (e *PipelineExecutor) Jobs() *JobTable {
	return e.jobs
}

/*
Execute starts one process per stage. Stage i reads from pipe i-1 (or its
"<" file, or the inherited stdin) and writes to pipe i (or its ">"/">>"
file, or the inherited stdout).

Stages are launched left to right. If a stage cannot be resolved or its
redirect cannot be opened, later stages are not launched, the parent drops
its pipe ends so the earlier stages see end-of-stream, and the returned
*execution.StageError names the failing stage. Stages that already started
run to completion and are waited for (or, for a background chain, handed to
the job table).
*/
func (e *PipelineExecutor) Execute(ctx context.Context, head *command.Command) (int, error) {
	stages := head.Stages()
	if len(stages) == 0 {
		return 0, nil
	}

	p, err := newPlumbing(len(stages))
	if err != nil {
		return -1, err
	}
	defer p.closeAll()

	started := make([]*exec.Cmd, 0, len(stages))
	var launchErr error
	for i, stage := range stages {
		if err := ctx.Err(); err != nil {
			launchErr = err
			break
		}
		cmd, err := e.prepare(i, stage, p)
		if err == nil {
			err = cmd.Start()
		}
		if err != nil {
			launchErr = &execution.StageError{Stage: stage.Name, Index: i, Err: err}
			break
		}
		started = append(started, cmd)
		p.release(i)
	}
	p.closeAll()

	if head.Background {
		if len(started) > 0 {
			j := e.jobs.add(head.String(), started)
			fmt.Fprintf(e.notices, "[%d] %d\n", j.ID, j.Pids[len(j.Pids)-1])
		}
		if launchErr != nil {
			return -1, launchErr
		}
		return 0, nil
	}

	status := waitAll(started)
	if launchErr != nil {
		return -1, launchErr
	}
	return status, nil
}

// prepare resolves the stage's program and binds its descriptors.
func (e *PipelineExecutor) prepare(i int, stage *command.Command, p *plumbing) (*exec.Cmd, error) {
	path, err := e.finder.Find(stage.Name)
	if err != nil {
		return nil, err
	}
	stdin, err := p.input(i, stage, e.streams.Stdin)
	if err != nil {
		return nil, err
	}
	stdout, err := p.output(i, stage, e.streams.Stdout)
	if err != nil {
		return nil, err
	}

	// Only these three descriptors reach the child: every pipe and file the
	// parent holds is close-on-exec, so other stages' pipe ends never leak.
	return &exec.Cmd{
		Path:   path,
		Args:   stage.Argv(),
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: e.streams.Stderr,
	}, nil
}

// waitAll waits for every started stage and returns the last one's exit status.
func waitAll(cmds []*exec.Cmd) int {
	status := 0
	for i, cmd := range cmds {
		s := exitStatus(cmd.Wait())
		if i == len(cmds)-1 {
			status = s
		}
	}
	return status
}
