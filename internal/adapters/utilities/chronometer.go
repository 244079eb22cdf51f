package utilities

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/AntonioJCosta/shellfyre/internal/core/ports"
)

// Chronometer counts a number of seconds down, printing each one.
type Chronometer struct {
	// Tick is the wall time one counted second takes.
	Tick time.Duration
}

var _ ports.Utility = (*Chronometer)(nil)

// NewChronometer creates a Chronometer. A non-positive tick means one second.
func NewChronometer(tick time.Duration) *Chronometer {
	if tick <= 0 {
		tick = time.Second
	}
	return &Chronometer{Tick: tick}
}

func (c *Chronometer) Name() string        { return "chronometer" }
func (c *Chronometer) Description() string { return "count down: chronometer [--quiet] <seconds>" }

func (c *Chronometer) Run(ctx context.Context, args []string, s ports.Streams) error {
	flags := pflag.NewFlagSet(c.Name(), pflag.ContinueOnError)
	flags.SetOutput(s.Err)
	quiet := flags.BoolP("quiet", "q", false, "only announce the end")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("usage: chronometer [--quiet] <seconds>")
	}
	seconds, err := strconv.Atoi(flags.Arg(0))
	if err != nil || seconds < 0 {
		return fmt.Errorf("%q is not a number of seconds", flags.Arg(0))
	}

	fmt.Fprintln(s.Out, "\nNow It Starts")
	ticker := time.NewTicker(c.Tick)
	defer ticker.Stop()
	for ; seconds > 0; seconds-- {
		if !*quiet {
			fmt.Fprintf(s.Out, "second : %d\n", seconds)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	fmt.Fprintln(s.Out, "\n Time is up !!!")
	return nil
}
