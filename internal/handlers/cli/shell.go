package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"golang.org/x/term"

	"github.com/AntonioJCosta/shellfyre/internal/adapters/commandparsing"
	"github.com/AntonioJCosta/shellfyre/internal/adapters/keyreader"
	"github.com/AntonioJCosta/shellfyre/internal/adapters/linereader"
	"github.com/AntonioJCosta/shellfyre/internal/adapters/oscommand"
	"github.com/AntonioJCosta/shellfyre/internal/adapters/pathsearch"
	"github.com/AntonioJCosta/shellfyre/internal/adapters/utilities"
	"github.com/AntonioJCosta/shellfyre/internal/config"
	"github.com/AntonioJCosta/shellfyre/internal/core/domain/history"
	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
	"github.com/AntonioJCosta/shellfyre/internal/core/services/dispatch"
	"github.com/AntonioJCosta/shellfyre/internal/core/services/recall"
	"github.com/AntonioJCosta/shellfyre/internal/core/services/session"
	"github.com/AntonioJCosta/shellfyre/internal/handlers/ui"
)

// shell is one fully wired interpreter.
type shell struct {
	session     ports.Session
	dispatcher  ports.Dispatcher
	reader      ports.LineReader
	interrupter *interrupter
}

func (s *shell) close() {
	s.interrupter.stop()
	s.reader.Close()
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

func newShell(opts rootOptions) (*shell, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.noColor || !cfg.Prompt.Color {
		ui.DisableColor()
	}

	stdin, stdout, stderr := os.Stdin, os.Stdout, os.Stderr
	interactive := opts.command == "" && term.IsTerminal(int(stdin.Fd()))

	reader, keys, err := newInput(cfg, interactive)
	if err != nil {
		return nil, err
	}

	finder := pathsearch.NewDirectoryFinder(cfg.SearchPath)
	jobs := oscommand.NewJobTable()
	notices := ui.NewPaintedWriter(stdout, ui.DetailColor)
	executor := oscommand.NewPipelineExecutor(finder, oscommand.Streams{Stdin: stdin, Stdout: stdout, Stderr: stderr}, jobs).
		WithNotices(notices)

	dirs := &history.DirHistory{}
	registry := newRegistry(cfg, dirs, keys, jobs)

	streams := ports.Streams{In: stdin, Out: stdout, Err: ui.NewPaintedWriter(stderr, ui.ErrorColor)}
	dispatcher := dispatch.NewService(dirs, registry, executor, finder, streams)

	intr := newInterrupter()
	sessOpts := session.Options{
		Out:         notices,
		Debug:       opts.debug || cfg.Debug,
		LineContext: intr.lineContext,
	}
	if interactive {
		sessOpts.Prompt = ui.Prompt(cfg.Prompt.Name)
	}
	sess := session.NewService(reader, commandparsing.NewWhitespaceParser(), dispatcher, jobs, sessOpts)

	return &shell{session: sess, dispatcher: dispatcher, reader: reader, interrupter: intr}, nil
}

// newInput picks the line editor on a terminal and a stream reader otherwise.
// The stream reader also answers recall prompts so scripts can drive cdh.
func newInput(cfg *config.Config, interactive bool) (ports.LineReader, ports.KeyReader, error) {
	if !interactive {
		r := linereader.NewStreamReader(os.Stdin, nil)
		return r, r, nil
	}

	reader, err := linereader.NewReadlineReader(cfg.LineEditor.HistoryLimit)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Recall.KeyReader == config.KeyReaderDirect {
		return reader, keyreader.NewDirectReader(os.Stdin), nil
	}
	self, err := os.Executable()
	if err != nil {
		reader.Close()
		return nil, nil, fmt.Errorf("locating the key helper: %w", err)
	}
	return reader, keyreader.NewHelperProcessReader(self, []string{"readkey"}, nil, os.Stdin), nil
}

func newRegistry(cfg *config.Config, dirs *history.DirHistory, keys ports.KeyReader, jobs ports.JobTable) *utilities.Registry {
	reg := utilities.NewRegistry()
	reg.Register(utilities.Calculate{})
	reg.Register(utilities.NewChronometer(cfg.Chronometer.TickDuration()))
	reg.Register(utilities.NewFileSearch(nil))
	reg.Register(utilities.NewJoker(utilities.JokerConfig{
		Schedule: cfg.Joker.Schedule,
		CronFile: cfg.Joker.CronFile,
		JokeURL:  cfg.Joker.JokeURL,
	}, nil))
	reg.Register(utilities.PsTraverse{})
	reg.Register(utilities.Take{})
	reg.Register(utilities.NewJobs(jobs))
	reg.Register(recall.NewService(dirs, keys))

	builtins := make([]utilities.HelpEntry, 0, len(dispatch.Builtins))
	for _, b := range dispatch.Builtins {
		builtins = append(builtins, utilities.HelpEntry{Name: b.Name, Description: b.Description})
	}
	reg.Register(utilities.NewHelp(reg, builtins...))
	return reg
}

/*
interrupter turns Ctrl-C into cancelling the context of the line being run,
which stops in-process utilities. Foreground programs receive the signal
from the terminal themselves. The signal is caught rather than ignored so
children started afterwards still get the default action.
*/
type interrupter struct {
	mu     sync.Mutex
	cancel context.CancelFunc

	sigs chan os.Signal
	done chan struct{}
}

func newInterrupter() *interrupter {
	i := &interrupter{sigs: make(chan os.Signal, 1), done: make(chan struct{})}
	signal.Notify(i.sigs, os.Interrupt)
	go func() {
		for {
			select {
			case <-i.sigs:
				i.interrupt()
			case <-i.done:
				return
			}
		}
	}()
	return i
}

// lineContext derives the context for one line and makes it the one Ctrl-C cancels.
func (i *interrupter) lineContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	i.mu.Lock()
	i.cancel = cancel
	i.mu.Unlock()
	return ctx, func() {
		i.mu.Lock()
		i.cancel = nil
		i.mu.Unlock()
		cancel()
	}
}

// interrupt cancels the running line, if any. Between lines it does nothing.
func (i *interrupter) interrupt() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.cancel != nil {
		i.cancel()
	}
}

func (i *interrupter) stop() {
	signal.Stop(i.sigs)
	close(i.done)
}
