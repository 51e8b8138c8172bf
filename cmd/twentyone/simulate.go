package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/cmd/twentyone/shared"
	"github.com/lox/twentyone/internal/config"
	"github.com/lox/twentyone/internal/fileutil"
	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/randutil"
	"github.com/lox/twentyone/internal/simulator"
	"github.com/lox/twentyone/internal/statistics"
)

type SimulateCmd struct {
	Players []string `arg:"" optional:"" help:"Computer player names (default: the config's computer players)"`
	Games   int      `short:"n" help:"Number of games (0 uses config)"`
	Workers int      `short:"w" help:"Parallel workers (0 uses config)"`
	Seed    int64    `help:"Base RNG seed (0 uses config, then random)"`
	Output  string   `short:"o" help:"Also write a JSON summary to this file" type:"path"`

	stdout io.Writer `kong:"-"`
}

func (c *SimulateCmd) Run(globals *Globals) error {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if globals.Debug {
		level = log.DebugLevel
	}
	logger, closeLog, err := shared.SetupLogger(shared.LoggerOptions{
		Level:    level,
		File:     cfg.Log.File,
		Prefix:   "simulate",
		Fallback: os.Stderr,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := shared.SetupSignalHandler(logger)
	defer stop()

	players := c.Players
	if len(players) == 0 {
		players = automatedPlayers(cfg.Game.Players)
	}
	games := c.Games
	if games == 0 {
		games = cfg.Simulation.Games
	}
	workers := c.Workers
	if workers == 0 {
		workers = cfg.Simulation.Workers
	}
	seed := c.Seed
	if seed == 0 {
		seed = cfg.Game.Seed
	}
	seed = randutil.Seed(seed)

	start := time.Now()
	stats, err := simulator.New(simulator.Config{
		Games:   games,
		Players: players,
		Seed:    seed,
		Workers: workers,
		Logger:  logger,
	}).Run(ctx)
	if err != nil {
		return err
	}

	out := c.stdout
	if out == nil {
		out = os.Stdout
	}
	printSummary(out, stats, seed, time.Since(start))

	if c.Output != "" {
		if err := fileutil.WriteJSON(c.Output, stats.Summary()); err != nil {
			return err
		}
		logger.Info("Summary written", "file", c.Output)
	}
	return nil
}

func automatedPlayers(names []string) []string {
	var out []string
	for _, name := range names {
		if game.KindForName(name) == game.Automated {
			out = append(out, name)
		}
	}
	return out
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func printSummary(w io.Writer, stats *statistics.Statistics, seed int64, elapsed time.Duration) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%d games (seed %d) in %s", stats.Games, seed, elapsed.Round(time.Millisecond))))

	lo, hi := stats.ConfidenceInterval95()
	fmt.Fprintf(w, "Turns: mean %.2f (95%% CI %.2f-%.2f), median %.1f, p90 %.1f\n",
		stats.Mean(), lo, hi, stats.Median(), stats.Percentile(0.9))
	fmt.Fprintf(w, "No winner: %d (%.1f%%)\n", stats.NoWinnerGames, pct(stats.NoWinnerGames, stats.Games))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-10s %7s %7s %7s %7s %7s %6s\n", "player", "wins", "win%", "shared", "busts", "bust%", "score")
	for _, name := range stats.PlayerNames() {
		ps := stats.Player(name)
		fmt.Fprintf(w, "%-10s %7d %6.1f%% %7d %7d %6.1f%% %6.2f\n",
			name, ps.Wins, 100*stats.WinRate(name), ps.SharedWins, ps.Busts, 100*stats.BustRate(name), stats.MeanScore(name))
	}
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
