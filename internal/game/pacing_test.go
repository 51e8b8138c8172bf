package game

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockPacer_WaitsForDelay(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mClock := quartz.NewMock(t)
	trap := mClock.Trap().NewTimer("pacer")
	defer trap.Close()

	pacer := NewClockPacer(mClock, time.Second)
	done := make(chan struct{})
	go func() {
		defer close(done)
		pacer.Pause(ctx)
	}()

	call := trap.MustWait(ctx)
	call.MustRelease(ctx)

	select {
	case <-done:
		t.Fatal("pause returned before the delay elapsed")
	default:
	}

	mClock.Advance(time.Second).MustWait(ctx)

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("pause did not return after the delay")
	}
}

func TestClockPacer_ZeroDelayDoesNotWait(t *testing.T) {
	mClock := quartz.NewMock(t)
	pacer := NewClockPacer(mClock, 0)

	// the mock clock never advances, so any timer would block forever
	pacer.Pause(context.Background())
	assert.Equal(t, time.Duration(0), pacer.Delay())
}

func TestClockPacer_ReturnsOnCancel(t *testing.T) {
	mClock := quartz.NewMock(t)
	pacer := NewClockPacer(mClock, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pacer.Pause(ctx)
}

func TestGame_UsesPacerBetweenPlayers(t *testing.T) {
	pacer := &countingPacer{}
	players := []*Player{
		NewAutomatedPlayer("com1", hand(10, 10)),
		NewAutomatedPlayer("com2", hand(10, 9)),
		NewAutomatedPlayer("com3", hand(10, 8)),
	}
	g, err := NewGame(noDraws{}, players, WithPacer(pacer))
	require.NoError(t, err)

	_, err = g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, pacer.pauses)
}

// noDraws fails the test run if the engine ever draws
type noDraws struct{}

func (noDraws) IntN(int) int { panic("unexpected draw") }
