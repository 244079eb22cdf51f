/*
Package config loads the interpreter's settings from a YAML file.
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Key reader kinds accepted by recall.key_reader.
const (
	KeyReaderHelper = "helper"
	KeyReaderDirect = "direct"
)

// DefaultTick is the length of one counted second of the chronometer.
const DefaultTick = time.Second

// Config holds the interpreter configuration.
type Config struct {
	// SearchPath lists the directories searched for programs, in order.
	// Empty means $PATH, or a built-in list when $PATH is unset.
	SearchPath  []string          `yaml:"search_path"`
	Prompt      PromptConfig      `yaml:"prompt"`
	LineEditor  LineEditorConfig  `yaml:"line_editor"`
	Recall      RecallConfig      `yaml:"recall"`
	Chronometer ChronometerConfig `yaml:"chronometer"`
	Joker       JokerConfig       `yaml:"joker"`
	Debug       bool              `yaml:"debug"`
}

// PromptConfig controls the interactive prompt.
type PromptConfig struct {
	Name  string `yaml:"name"`
	Color bool   `yaml:"color"`
}

// LineEditorConfig controls the terminal line editor.
type LineEditorConfig struct {
	HistoryLimit int `yaml:"history_limit"`
}

// RecallConfig controls how cdh reads the selected key.
type RecallConfig struct {
	KeyReader string `yaml:"key_reader"`
}

// ChronometerConfig controls the chronometer utility.
type ChronometerConfig struct {
	Tick string `yaml:"tick"`
}

// TickDuration parses the configured tick or returns DefaultTick.
func (c *ChronometerConfig) TickDuration() time.Duration {
	if c.Tick != "" {
		d, err := time.ParseDuration(c.Tick)
		if err == nil && d > 0 {
			return d
		}
	}
	return DefaultTick
}

// JokerConfig controls the crontab entry written by the joker utility.
type JokerConfig struct {
	Schedule string `yaml:"schedule"`
	CronFile string `yaml:"cron_file"`
	JokeURL  string `yaml:"joke_url"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Prompt: PromptConfig{
			Name:  "shellfyre",
			Color: true,
		},
		LineEditor: LineEditorConfig{
			HistoryLimit: 500,
		},
		Recall: RecallConfig{
			KeyReader: KeyReaderHelper,
		},
		Chronometer: ChronometerConfig{
			Tick: DefaultTick.String(),
		},
		Joker: JokerConfig{
			Schedule: "*/15 * * * *",
			CronFile: "cronFile.txt",
			JokeURL:  "https://icanhazdadjoke.com/",
		},
	}
}

// DefaultPath returns ~/.config/shellfyre/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "shellfyre", "config.yaml"), nil
}

// Load reads the config from the standard location.
// If the file doesn't exist, returns the default config.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from the given path. Keys missing from the file
// keep their defaults; unknown keys are an error.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		// A document holding only comments decodes as EOF.
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	for i, dir := range cfg.SearchPath {
		cfg.SearchPath[i] = expandHome(dir)
	}
	cfg.Joker.CronFile = expandHome(cfg.Joker.CronFile)
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Recall.KeyReader {
	case KeyReaderHelper, KeyReaderDirect:
	default:
		return fmt.Errorf("recall.key_reader must be %q or %q, got %q", KeyReaderHelper, KeyReaderDirect, c.Recall.KeyReader)
	}
	if c.LineEditor.HistoryLimit < 0 {
		return fmt.Errorf("line_editor.history_limit must not be negative")
	}
	if c.Chronometer.Tick != "" {
		if _, err := time.ParseDuration(c.Chronometer.Tick); err != nil {
			return fmt.Errorf("chronometer.tick: %w", err)
		}
	}
	if c.Joker.Schedule != "" && len(strings.Fields(c.Joker.Schedule)) != 5 {
		return fmt.Errorf("joker.schedule must have five fields, got %q", c.Joker.Schedule)
	}
	return nil
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
