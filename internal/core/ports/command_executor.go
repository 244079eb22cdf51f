package ports

import (
	"context"

	"github.com/AntonioJCosta/shellfyre/internal/core/domain/command"
	"github.com/AntonioJCosta/shellfyre/internal/core/domain/job"
)

// PipelineExecutor runs a command chain as operating-system processes.
type PipelineExecutor interface {
	// Execute starts one process per stage, connected by pipes. For a
	// foreground chain it waits for every stage and returns the exit status
	// of the last one. For a background chain it returns as soon as all
	// stages are started.
	Execute(ctx context.Context, cmd *command.Command) (status int, err error)
}

// JobTable tracks background chains until their processes are reaped.
type JobTable interface {
	// Reap collects every background process that has terminated without
	// blocking and returns the jobs whose processes are now all gone.
	Reap() []job.Job

	// Pending lists jobs with at least one process not yet reaped.
	Pending() []job.Job
}
