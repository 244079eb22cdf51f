package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/shellfyre/internal/core/domain/command"
	"github.com/AntonioJCosta/shellfyre/internal/core/domain/job"
	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// MockPipelineExecutor is a mock implementation of ports.PipelineExecutor.
type MockPipelineExecutor struct {
	ExecuteFunc  func(ctx context.Context, cmd *command.Command) (int, error)
	ExecuteCalls []*command.Command
}

// Execute calls the mock ExecuteFunc.
func (m *MockPipelineExecutor) Execute(ctx context.Context, cmd *command.Command) (int, error) {
	m.ExecuteCalls = append(m.ExecuteCalls, cmd)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return -1, errors.New("MockPipelineExecutor.ExecuteFunc not implemented")
}

// MockJobTable is a mock implementation of ports.JobTable.
type MockJobTable struct {
	ReapFunc    func() []job.Job
	PendingFunc func() []job.Job
}

// Reap calls the mock ReapFunc. Without one nothing is reaped.
func (m *MockJobTable) Reap() []job.Job {
	if m.ReapFunc != nil {
		return m.ReapFunc()
	}
	return nil
}

// Pending calls the mock PendingFunc. Without one nothing is pending.
func (m *MockJobTable) Pending() []job.Job {
	if m.PendingFunc != nil {
		return m.PendingFunc()
	}
	return nil
}

var (
	_ ports.PipelineExecutor = (*MockPipelineExecutor)(nil)
	_ ports.JobTable         = (*MockJobTable)(nil)
)
