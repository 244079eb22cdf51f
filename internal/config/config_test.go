package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name    string
		content *string // nil means the file does not exist
		want    func() *Config
		wantErr string
	}{
		{
			name:    "missing file gives defaults",
			content: nil,
			want:    DefaultConfig,
		},
		{
			name:    "empty file gives defaults",
			content: ptr(""),
			want:    DefaultConfig,
		},
		{
			name:    "comments only gives defaults",
			content: ptr("# nothing configured yet\n"),
			want:    DefaultConfig,
		},
		{
			name: "partial override keeps other defaults",
			content: ptr(`
search_path: ["~/bin", /usr/bin]
prompt:
  name: fyre
debug: true
chronometer:
  tick: 10ms
`),
			want: func() *Config {
				c := DefaultConfig()
				c.SearchPath = []string{filepath.Join(home, "bin"), "/usr/bin"}
				c.Prompt.Name = "fyre"
				c.Debug = true
				c.Chronometer.Tick = "10ms"
				return c
			},
		},
		{
			name: "joker and recall",
			content: ptr(`
recall:
  key_reader: direct
joker:
  schedule: "0 9 * * 1"
  cron_file: ~/jokes.cron
`),
			want: func() *Config {
				c := DefaultConfig()
				c.Recall.KeyReader = KeyReaderDirect
				c.Joker.Schedule = "0 9 * * 1"
				c.Joker.CronFile = filepath.Join(home, "jokes.cron")
				return c
			},
		},
		{
			name:    "unknown key",
			content: ptr("promt:\n  name: typo\n"),
			wantErr: "field promt not found",
		},
		{
			name:    "bad key reader",
			content: ptr("recall:\n  key_reader: telepathy\n"),
			wantErr: "recall.key_reader",
		},
		{
			name:    "bad tick",
			content: ptr("chronometer:\n  tick: soon\n"),
			wantErr: "chronometer.tick",
		},
		{
			name:    "bad schedule",
			content: ptr("joker:\n  schedule: hourly\n"),
			wantErr: "joker.schedule",
		},
		{
			name:    "negative history limit",
			content: ptr("line_editor:\n  history_limit: -1\n"),
			wantErr: "history_limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.yaml")
			if tt.content != nil {
				path = writeConfig(t, *tt.content)
			}

			got, err := LoadFrom(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadFrom() error = %v, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFrom() unexpected error: %v", err)
			}
			if want := tt.want(); !reflect.DeepEqual(got, want) {
				t.Errorf("LoadFrom() = %#v, want %#v", got, want)
			}
		})
	}
}

func TestLoad_UsesHomeConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := os.MkdirAll(filepath.Join(home, ".config", "shellfyre"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".config", "shellfyre", "config.yaml"), []byte("debug: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if !cfg.Debug {
		t.Errorf("Load() did not read %s", filepath.Join(home, ".config", "shellfyre", "config.yaml"))
	}
}

func TestChronometerConfig_TickDuration(t *testing.T) {
	tests := []struct {
		tick string
		want time.Duration
	}{
		{tick: "", want: DefaultTick},
		{tick: "250ms", want: 250 * time.Millisecond},
		{tick: "garbage", want: DefaultTick},
		{tick: "-1s", want: DefaultTick},
	}
	for _, tt := range tests {
		c := ChronometerConfig{Tick: tt.tick}
		if got := c.TickDuration(); got != tt.want {
			t.Errorf("TickDuration(%q) = %v, want %v", tt.tick, got, tt.want)
		}
	}
}

func ptr(s string) *string { return &s }
