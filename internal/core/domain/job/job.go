/*
Package job defines the record kept for a pipeline started in the background.
*/
package job

import "time"

// Job is a backgrounded chain whose processes have not all been reaped yet.
type Job struct {
	ID       int
	Line     string // the chain in command-line form
	Pids     []int
	Started  time.Time
	ExitCode int // status of the last stage, valid once the job is done
}
