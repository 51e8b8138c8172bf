package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/twentyone/internal/config"
	"github.com/lox/twentyone/internal/statistics"
)

func missingConfig(t *testing.T) *Globals {
	t.Helper()
	return &Globals{Config: filepath.Join(t.TempDir(), "none.hcl")}
}

func TestPlayResolveFlagsOverrideConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	cmd := &PlayCmd{Players: []string{"alice", "com1"}, Seed: 7, Pace: 250 * time.Millisecond, NoColor: true}
	s, err := cmd.resolve(cfg, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"alice", "com1"}, s.players)
	assert.Equal(t, int64(7), s.seed)
	assert.Equal(t, 250*time.Millisecond, s.pace)
	assert.False(t, s.color)
	assert.Equal(t, log.DebugLevel, s.level)
}

func TestPlayResolveDefaults(t *testing.T) {
	cfg := config.DefaultConfig()

	s, err := (&PlayCmd{NoPace: true}).resolve(cfg, false)
	require.NoError(t, err)

	assert.Equal(t, cfg.Game.Players, s.players)
	assert.NotZero(t, s.seed, "zero seed is replaced")
	assert.Zero(t, s.pace)
	assert.True(t, s.color)
	assert.Equal(t, log.InfoLevel, s.level)
}

func TestPlayRun(t *testing.T) {
	var out bytes.Buffer
	cmd := &PlayCmd{
		Players: []string{"alice", "com1"},
		Seed:    42,
		NoPace:  true,
		NoColor: true,
		stdin:   strings.NewReader("n\n"),
		stdout:  &out,
	}

	require.NoError(t, cmd.Run(missingConfig(t)))

	text := out.String()
	assert.Contains(t, text, "Turn 1")
	assert.Contains(t, text, "Draw another card? (y/n)")
	assert.Contains(t, text, "alice stands on")
}

func TestPlayRunRejectsBadNames(t *testing.T) {
	cmd := &PlayCmd{
		Players: []string{"com1", "com1"},
		NoPace:  true,
		stdin:   strings.NewReader(""),
		stdout:  &bytes.Buffer{},
	}
	assert.Error(t, cmd.Run(missingConfig(t)))
}

func TestSimulateRun(t *testing.T) {
	var out bytes.Buffer
	cmd := &SimulateCmd{
		Players: []string{"com1", "com2"},
		Games:   50,
		Workers: 2,
		Seed:    3,
		stdout:  &out,
	}

	require.NoError(t, cmd.Run(missingConfig(t)))

	text := out.String()
	assert.Contains(t, text, "50 games (seed 3)")
	assert.Contains(t, text, "com1")
	assert.Contains(t, text, "com2")
}

func TestSimulateWritesSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	cmd := &SimulateCmd{
		Players: []string{"com1"},
		Games:   10,
		Seed:    1,
		Output:  path,
		stdout:  &bytes.Buffer{},
	}
	require.NoError(t, cmd.Run(missingConfig(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var sum statistics.Summary
	require.NoError(t, json.Unmarshal(data, &sum))
	assert.Equal(t, 10, sum.Games)
	require.Len(t, sum.Players, 1)
	assert.Equal(t, "com1", sum.Players[0].Name)
}

func TestSimulateRejectsInteractive(t *testing.T) {
	cmd := &SimulateCmd{Players: []string{"alice"}, Games: 1, stdout: &bytes.Buffer{}}
	assert.Error(t, cmd.Run(missingConfig(t)))
}

func TestAutomatedPlayers(t *testing.T) {
	assert.Equal(t, []string{"com1", "com2"}, automatedPlayers([]string{"p1", "com1", "p2", "com2"}))
	assert.Empty(t, automatedPlayers([]string{"p1"}))
}

func TestPrintSummary(t *testing.T) {
	stats := &statistics.Statistics{}
	stats.Add(statistics.GameResult{
		Turns:   2,
		Winners: []string{"com1"},
		Players: []statistics.PlayerResult{{Name: "com1", Total: 19}, {Name: "com2", Total: 23, Busted: true}},
	})

	var out bytes.Buffer
	printSummary(&out, stats, 9, time.Second)

	text := out.String()
	assert.Contains(t, text, "1 games (seed 9)")
	assert.Contains(t, text, "No winner: 0")
	assert.Regexp(t, `com1\s+1\s+100\.0%`, text)
	assert.Regexp(t, `com2\s+0\s+0\.0%\s+0\s+1\s+100\.0%`, text)
}
