package cli

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterrupter_CancelsOnlyTheRunningLine(t *testing.T) {
	intr := newInterrupter()
	defer intr.stop()

	parent := context.Background()
	ctx, release := intr.lineContext(parent)

	intr.interrupt()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.NoError(t, parent.Err())
	release()

	next, releaseNext := intr.lineContext(parent)
	defer releaseNext()
	assert.NoError(t, next.Err(), "an earlier interrupt must not reach the next line")
}

func TestInterrupter_BetweenLinesIsNoop(t *testing.T) {
	intr := newInterrupter()
	defer intr.stop()

	ctx, release := intr.lineContext(context.Background())
	release()
	intr.interrupt()

	ctx2, release2 := intr.lineContext(context.Background())
	defer release2()
	assert.NoError(t, ctx2.Err())
	assert.ErrorIs(t, ctx.Err(), context.Canceled, "release cancels its own context")
}

func TestInterrupter_SignalCancelsLine(t *testing.T) {
	intr := newInterrupter()
	defer intr.stop()

	ctx, release := intr.lineContext(context.Background())
	defer release()

	self, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, self.Signal(os.Interrupt))

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("Ctrl-C did not cancel the running line")
	}
}
