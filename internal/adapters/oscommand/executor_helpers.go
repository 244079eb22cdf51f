package oscommand

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/AntonioJCosta/shellfyre/internal/core/domain/command"
)

/*
plumbing owns every descriptor the parent opens for one chain: the N-1
pipes and any redirect files. Each descriptor is closed in the parent as
soon as the stage using it has started, and closeAll drops whatever is
left on any exit path.
*/
type plumbing struct {
	readers []*os.File // readers[i] is stdin of stage i+1
	writers []*os.File // writers[i] is stdout of stage i
	files   [][]*os.File
}

func newPlumbing(stages int) (*plumbing, error) {
	p := &plumbing{
		readers: make([]*os.File, stages-1),
		writers: make([]*os.File, stages-1),
		files:   make([][]*os.File, stages),
	}
	for i := 0; i < stages-1; i++ {
		r, w, err := os.Pipe()
		if err != nil {
			p.closeAll()
			return nil, fmt.Errorf("creating pipe: %w", err)
		}
		p.readers[i], p.writers[i] = r, w
	}
	return p, nil
}

// input returns stage i's stdin: the previous pipe, its "<" file, or inherited.
func (p *plumbing) input(i int, stage *command.Command, inherited *os.File) (*os.File, error) {
	if i > 0 {
		return p.readers[i-1], nil
	}
	if path, ok := stage.Redirect(command.Stdin); ok {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		p.files[i] = append(p.files[i], f)
		return f, nil
	}
	return inherited, nil
}

// output returns stage i's stdout: the next pipe, its ">" or ">>" file, or inherited.
func (p *plumbing) output(i int, stage *command.Command, inherited *os.File) (*os.File, error) {
	if i < len(p.writers) {
		return p.writers[i], nil
	}
	flag := os.O_CREATE | os.O_WRONLY
	path, ok := stage.Redirect(command.Stdout)
	if ok {
		flag |= os.O_TRUNC
	} else if path, ok = stage.Redirect(command.Append); ok {
		flag |= os.O_APPEND
	} else {
		return inherited, nil
	}
	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return nil, err
	}
	p.files[i] = append(p.files[i], f)
	return f, nil
}

// release closes the parent's copies of the descriptors handed to stage i.
func (p *plumbing) release(i int) {
	if i > 0 {
		closeFile(&p.readers[i-1])
	}
	if i < len(p.writers) {
		closeFile(&p.writers[i])
	}
	for j := range p.files[i] {
		closeFile(&p.files[i][j])
	}
}

func (p *plumbing) closeAll() {
	for i := range p.readers {
		closeFile(&p.readers[i])
		closeFile(&p.writers[i])
	}
	for i := range p.files {
		for j := range p.files[i] {
			closeFile(&p.files[i][j])
		}
	}
}

func closeFile(f **os.File) {
	if *f != nil {
		_ = (*f).Close()
		*f = nil
	}
}

// exitStatus converts a Wait error into a shell-style status: the exit code,
// or 128+signal for a stage killed by a signal.
func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal())
		}
		return exitErr.ExitCode()
	}
	return 1
}
