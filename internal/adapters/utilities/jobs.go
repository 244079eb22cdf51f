package utilities

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// Jobs lists background chains that are still running.
type Jobs struct {
	table ports.JobTable
	now   func() time.Time
}

var _ ports.Utility = (*Jobs)(nil)

// NewJobs creates a Jobs utility over table.
func NewJobs(table ports.JobTable) *Jobs {
	if table == nil {
		panic("job table cannot be nil")
	}
	return &Jobs{table: table, now: time.Now}
}

func (j *Jobs) Name() string        { return "jobs" }
func (j *Jobs) Description() string { return "list running background jobs" }

func (j *Jobs) Run(_ context.Context, _ []string, s ports.Streams) error {
	pending := j.table.Pending()
	if len(pending) == 0 {
		fmt.Fprintln(s.Out, "No background jobs")
		return nil
	}

	table := tablewriter.NewWriter(s.Out)
	table.SetHeader([]string{"Job", "PIDs", "Running", "Command"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for _, job := range pending {
		pids := make([]string, len(job.Pids))
		for i, p := range job.Pids {
			pids[i] = strconv.Itoa(p)
		}
		running := j.now().Sub(job.Started).Truncate(time.Second)
		table.Append([]string{
			"[" + strconv.Itoa(job.ID) + "]",
			strings.Join(pids, ","),
			running.String(),
			job.Line,
		})
	}
	table.Render()
	return nil
}
