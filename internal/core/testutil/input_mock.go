package testutil

import (
	"context"
	"io"

	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// MockLineReader is a mock implementation of ports.LineReader.
type MockLineReader struct {
	ReadLineFunc func(prompt string) (string, error)
	CloseFunc    func() error
	// Prompts keeps track of every prompt shown.
	Prompts []string
}

// NewScriptedLineReader returns a MockLineReader that yields lines in order, then io.EOF.
func NewScriptedLineReader(lines ...string) *MockLineReader {
	m := &MockLineReader{}
	m.ReadLineFunc = func(string) (string, error) {
		if len(lines) == 0 {
			return "", io.EOF
		}
		line := lines[0]
		lines = lines[1:]
		return line, nil
	}
	return m
}

func (m *MockLineReader) ReadLine(prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.ReadLineFunc != nil {
		return m.ReadLineFunc(prompt)
	}
	return "", io.EOF
}

func (m *MockLineReader) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// MockKeyReader is a mock implementation of ports.KeyReader.
type MockKeyReader struct {
	ReadKeyFunc  func(ctx context.Context) (byte, error)
	ReadKeyCalls int
}

// NewKeyReader returns a MockKeyReader that always answers key.
func NewKeyReader(key byte) *MockKeyReader {
	return &MockKeyReader{ReadKeyFunc: func(context.Context) (byte, error) { return key, nil }}
}

func (m *MockKeyReader) ReadKey(ctx context.Context) (byte, error) {
	m.ReadKeyCalls++
	if m.ReadKeyFunc != nil {
		return m.ReadKeyFunc(ctx)
	}
	return 0, ports.ErrNoKey
}

var (
	_ ports.LineReader = (*MockLineReader)(nil)
	_ ports.KeyReader  = (*MockKeyReader)(nil)
)
