package utilities

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

func searchTree(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	for _, f := range []string{"alpha.txt", "beta.txt", "sub/alphabet.go", "sub/deep/alp.md", "sub/other"} {
		path := filepath.Join(dir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}
	chdir(t, dir)
}

func TestFileSearch_Run(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "current directory only", args: []string{"alp"}, want: []string{"alpha.txt"}},
		{name: "recursive", args: []string{"-r", "alp"}, want: []string{"alpha.txt", "sub/alphabet.go", "sub/deep/alp.md"}},
		{name: "directories match too", args: []string{"su"}, want: []string{"sub"}},
		{name: "no match", args: []string{"zzz"}, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searchTree(t)
			var out bytes.Buffer
			fs := NewFileSearch(func(context.Context, string) error {
				t.Fatal("opener must not run without -o")
				return nil
			})
			require.NoError(t, fs.Run(context.Background(), tt.args, ports.Streams{Out: &out, Err: &out}))
			assert.Equal(t, tt.want, strings.Fields(out.String()))
		})
	}
}

func TestFileSearch_OpenEveryMatch(t *testing.T) {
	searchTree(t)
	var opened []string
	fs := NewFileSearch(func(_ context.Context, path string) error {
		opened = append(opened, path)
		return nil
	})

	var out bytes.Buffer
	require.NoError(t, fs.Run(context.Background(), []string{"-r", "-o", "alp"}, ports.Streams{Out: &out, Err: &out}))
	assert.Equal(t, []string{"alpha.txt", "sub/alphabet.go", "sub/deep/alp.md"}, opened)
}

func TestFileSearch_OpenFailureIsReported(t *testing.T) {
	searchTree(t)
	fs := NewFileSearch(func(context.Context, string) error { return os.ErrPermission })

	var out, errOut bytes.Buffer
	require.NoError(t, fs.Run(context.Background(), []string{"-o", "beta"}, ports.Streams{Out: &out, Err: &errOut}))
	assert.Equal(t, "beta.txt\n", out.String())
	assert.Contains(t, errOut.String(), "opening beta.txt")
}

func TestFileSearch_Usage(t *testing.T) {
	var out bytes.Buffer
	err := NewFileSearch(nil).Run(context.Background(), []string{"-r"}, ports.Streams{Out: &out, Err: &out})
	assert.Error(t, err)
}
