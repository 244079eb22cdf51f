package oscommand

import (
	"errors"
	"os/exec"
	"sort"
	"sync"
	"time"

	"golang.org/x/sys/unix"

	"github.com/AntonioJCosta/shellfyre/internal/core/domain/job"
)

type trackedJob struct {
	job   job.Job
	procs []*exec.Cmd
	done  []bool
}

func (t *trackedJob) finished() bool {
	for _, d := range t.done {
		if !d {
			return false
		}
	}
	return true
}

/*
JobTable records background chains and collects their processes without
blocking. Processes are reaped with wait4(WNOHANG) between prompts, so a
finished background command never lingers as a zombie once the next line
has been read.
*/
type JobTable struct {
	mu     sync.Mutex
	nextID int
	jobs   map[int]*trackedJob
	now    func() time.Time
}

// NewJobTable creates an empty JobTable.
func NewJobTable() *JobTable {
	return &JobTable{
		nextID: 1,
		jobs:   make(map[int]*trackedJob),
		now:    time.Now,
	}
}

func (t *JobTable) add(line string, procs []*exec.Cmd) job.Job {
	t.mu.Lock()
	defer t.mu.Unlock()

	j := job.Job{ID: t.nextID, Line: line, Started: t.now()}
	for _, p := range procs {
		j.Pids = append(j.Pids, p.Process.Pid)
	}
	t.nextID++
	t.jobs[j.ID] = &trackedJob{job: j, procs: procs, done: make([]bool, len(procs))}
	return j
}

// Reap polls every unreaped background process and returns the jobs that completed, ordered by ID.
func (t *JobTable) Reap() []job.Job {
	t.mu.Lock()
	defer t.mu.Unlock()

	var completed []job.Job
	for id, tj := range t.jobs {
		for i, p := range tj.procs {
			if tj.done[i] {
				continue
			}
			status, exited := poll(p.Process.Pid)
			if !exited {
				continue
			}
			tj.done[i] = true
			_ = p.Process.Release()
			if i == len(tj.procs)-1 {
				tj.job.ExitCode = status
			}
		}
		if tj.finished() {
			completed = append(completed, tj.job)
			delete(t.jobs, id)
		}
	}
	sortJobs(completed)
	return completed
}

// Pending lists jobs that still have running processes, ordered by ID.
func (t *JobTable) Pending() []job.Job {
	t.mu.Lock()
	defer t.mu.Unlock()

	pending := make([]job.Job, 0, len(t.jobs))
	for _, tj := range t.jobs {
		pending = append(pending, tj.job)
	}
	sortJobs(pending)
	return pending
}

// poll reports whether pid has terminated and, if so, its shell-style status.
// A pid that is no longer our child counts as terminated.
func poll(pid int) (int, bool) {
	var ws unix.WaitStatus
	for {
		wpid, err := unix.Wait4(pid, &ws, unix.WNOHANG, nil)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return 0, errors.Is(err, unix.ECHILD)
		}
		if wpid == 0 {
			return 0, false
		}
		break
	}
	if ws.Signaled() {
		return 128 + int(ws.Signal()), true
	}
	return ws.ExitStatus(), true
}

func sortJobs(jobs []job.Job) {
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })
}
