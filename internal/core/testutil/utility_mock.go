package testutil

import (
	"context"
	"sort"

	"github.com/AntonioJCosta/shellfyre/internal/core/domain/command"
	"github.com/AntonioJCosta/shellfyre/internal/core/domain/execution"
	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// MockUtility is a mock implementation of ports.Utility.
type MockUtility struct {
	UtilityName        string
	UtilityDescription string
	RunFunc            func(ctx context.Context, args []string, streams ports.Streams) error
	// RunCalls keeps track of the argument vectors passed to Run.
	RunCalls [][]string
}

func (m *MockUtility) Name() string        { return m.UtilityName }
func (m *MockUtility) Description() string { return m.UtilityDescription }

func (m *MockUtility) Run(ctx context.Context, args []string, streams ports.Streams) error {
	m.RunCalls = append(m.RunCalls, args)
	if m.RunFunc != nil {
		return m.RunFunc(ctx, args, streams)
	}
	return nil
}

// MockUtilityRegistry is a map-backed ports.UtilityRegistry.
type MockUtilityRegistry map[string]ports.Utility

// NewMockUtilityRegistry registers utils under their names.
func NewMockUtilityRegistry(utils ...ports.Utility) MockUtilityRegistry {
	r := make(MockUtilityRegistry, len(utils))
	for _, u := range utils {
		r[u.Name()] = u
	}
	return r
}

func (r MockUtilityRegistry) Lookup(name string) (ports.Utility, bool) {
	u, ok := r[name]
	return u, ok
}

func (r MockUtilityRegistry) All() []ports.Utility {
	all := make([]ports.Utility, 0, len(r))
	for _, u := range r {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name() < all[j].Name() })
	return all
}

// MockDispatcher is a mock implementation of ports.Dispatcher.
type MockDispatcher struct {
	DispatchFunc  func(ctx context.Context, cmd *command.Command) execution.Result
	DispatchCalls []*command.Command
	Status        int
}

func (m *MockDispatcher) Dispatch(ctx context.Context, cmd *command.Command) execution.Result {
	m.DispatchCalls = append(m.DispatchCalls, cmd)
	if m.DispatchFunc != nil {
		return m.DispatchFunc(ctx, cmd)
	}
	return execution.Success
}

func (m *MockDispatcher) LastStatus() int {
	return m.Status
}

var (
	_ ports.Utility         = (*MockUtility)(nil)
	_ ports.UtilityRegistry = MockUtilityRegistry(nil)
	_ ports.Dispatcher      = (*MockDispatcher)(nil)
)
