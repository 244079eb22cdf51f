package testutil

import (
	"fmt"

	"github.com/AntonioJCosta/shellfyre/internal/core/domain/execution"
	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// MockExecutableFinder is a mock implementation of ports.ExecutableFinder.
type MockExecutableFinder struct {
	FindFunc       func(name string) (string, error)
	CandidatesFunc func(prefix string) []string
}

func (m *MockExecutableFinder) Find(name string) (string, error) {
	if m.FindFunc != nil {
		return m.FindFunc(name)
	}
	return "", fmt.Errorf("%s: %w", name, execution.ErrCommandNotFound)
}

func (m *MockExecutableFinder) Candidates(prefix string) []string {
	if m.CandidatesFunc != nil {
		return m.CandidatesFunc(prefix)
	}
	return nil
}

var _ ports.ExecutableFinder = (*MockExecutableFinder)(nil)
