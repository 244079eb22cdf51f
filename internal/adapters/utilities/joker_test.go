package utilities

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

func TestJoker_Entry(t *testing.T) {
	want := "*/15 * * * * XDG_RUNTIME_DIR=/run/user/$(id -u) /usr/bin/notify-send \"$(/bin/curl https://icanhazdadjoke.com/)\"\n"
	assert.Equal(t, want, NewJoker(JokerConfig{}, nil).Entry())
}

func TestJoker_Run(t *testing.T) {
	cronFile := filepath.Join(t.TempDir(), "cron.txt")
	var installed string
	j := NewJoker(JokerConfig{Schedule: "0 * * * *", CronFile: cronFile, JokeURL: "https://example.com/joke"},
		func(_ context.Context, file string) error {
			b, err := os.ReadFile(file)
			installed = string(b)
			return err
		})

	var out bytes.Buffer
	require.NoError(t, j.Run(context.Background(), nil, ports.Streams{Out: &out}))
	assert.Equal(t, "0 * * * * XDG_RUNTIME_DIR=/run/user/$(id -u) /usr/bin/notify-send \"$(/bin/curl https://example.com/joke)\"\n", installed)
	assert.Contains(t, out.String(), "0 * * * *")
}

func TestJoker_InstallFailure(t *testing.T) {
	boom := errors.New("no crontab")
	j := NewJoker(JokerConfig{CronFile: filepath.Join(t.TempDir(), "cron.txt")},
		func(context.Context, string) error { return boom })

	var out bytes.Buffer
	err := j.Run(context.Background(), nil, ports.Streams{Out: &out})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, out.String())
}
