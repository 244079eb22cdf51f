package utilities

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

func TestTake_CreatesAndEnters(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	chdir(t, dir)

	require.NoError(t, Take{}.Run(context.Background(), []string{"x/y/z"}, ports.Streams{}))
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "x", "y", "z"), wd)

	// An existing path is entered without complaint.
	chdir(t, dir)
	require.NoError(t, Take{}.Run(context.Background(), []string{"x/y"}, ports.Streams{}))
	wd, err = os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "x", "y"), wd)
}

func TestTake_Errors(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile("file", nil, 0644))

	assert.Error(t, Take{}.Run(context.Background(), nil, ports.Streams{}))
	assert.Error(t, Take{}.Run(context.Background(), []string{"file/sub"}, ports.Streams{}))
}

func TestPsTraverse_Unsupported(t *testing.T) {
	err := PsTraverse{}.Run(context.Background(), nil, ports.Streams{})
	assert.True(t, errors.Is(err, errors.ErrUnsupported))
}
