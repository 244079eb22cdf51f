package utilities

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// CrontabInstaller installs file as the user's crontab.
type CrontabInstaller func(ctx context.Context, file string) error

// InstallCrontab runs "crontab <file>".
func InstallCrontab(ctx context.Context, file string) error {
	out, err := exec.CommandContext(ctx, "crontab", file).CombinedOutput()
	if err != nil {
		return fmt.Errorf("crontab: %w: %s", err, out)
	}
	return nil
}

// JokerConfig controls the crontab entry the joker utility writes.
type JokerConfig struct {
	Schedule string // five cron fields
	CronFile string
	JokeURL  string
}

// Joker schedules a desktop notification that shows a joke fetched from the web.
type Joker struct {
	cfg     JokerConfig
	install CrontabInstaller
}

var _ ports.Utility = (*Joker)(nil)

// NewJoker creates a Joker. A nil installer means InstallCrontab.
func NewJoker(cfg JokerConfig, install CrontabInstaller) *Joker {
	if cfg.Schedule == "" {
		cfg.Schedule = "*/15 * * * *"
	}
	if cfg.CronFile == "" {
		cfg.CronFile = "cronFile.txt"
	}
	if cfg.JokeURL == "" {
		cfg.JokeURL = "https://icanhazdadjoke.com/"
	}
	if install == nil {
		install = InstallCrontab
	}
	return &Joker{cfg: cfg, install: install}
}

func (j *Joker) Name() string        { return "joker" }
func (j *Joker) Description() string { return "schedule a joke notification every 15 minutes" }

// Entry returns the crontab line the utility installs.
func (j *Joker) Entry() string {
	return fmt.Sprintf("%s XDG_RUNTIME_DIR=/run/user/$(id -u) /usr/bin/notify-send \"$(/bin/curl %s)\"\n",
		j.cfg.Schedule, j.cfg.JokeURL)
}

func (j *Joker) Run(ctx context.Context, _ []string, s ports.Streams) error {
	if err := os.WriteFile(j.cfg.CronFile, []byte(j.Entry()), 0644); err != nil {
		return fmt.Errorf("writing cron file: %w", err)
	}
	if err := j.install(ctx, j.cfg.CronFile); err != nil {
		return err
	}
	fmt.Fprintf(s.Out, "Jokes scheduled (%s)\n", j.cfg.Schedule)
	return nil
}
