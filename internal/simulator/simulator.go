// Package simulator plays batches of all-automated games and aggregates the
// outcomes.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/randutil"
	"github.com/lox/twentyone/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// ErrInteractivePlayer is returned when a simulation includes a player that
// would wait for a person
var ErrInteractivePlayer = errors.New("simulations only support automated players")

// Config holds configuration for running simulations
type Config struct {
	Games   int
	Players []string
	Seed    int64 // game i uses Seed+i
	Workers int   // default 1
	Logger  *log.Logger
}

// Simulator runs game simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Simulator{config: config}
}

// Run plays every game and returns the aggregated statistics. Games are
// spread across workers; each game owns its RNG, so totals do not depend on
// the worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}
	if err := game.ValidateNames(s.config.Players); err != nil {
		return nil, err
	}
	for _, name := range s.config.Players {
		if game.KindForName(name) != game.Automated {
			return nil, fmt.Errorf("%w: %q", ErrInteractivePlayer, name)
		}
	}

	workers := min(s.config.Workers, s.config.Games)
	partials := make([]*statistics.Statistics, workers)

	s.config.Logger.Info("Starting simulation", "games", s.config.Games, "workers", workers, "seed", s.config.Seed)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		partial := &statistics.Statistics{}
		partials[w] = partial

		g.Go(func() error {
			for i := w; i < s.config.Games; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := PlayGame(ctx, s.config.Seed+int64(i), s.config.Players, s.config.Logger)
				if err != nil {
					return fmt.Errorf("game %d: %w", i, err)
				}
				partial.Add(result)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, partial := range partials {
		stats.Merge(partial)
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("Simulation complete", "games", stats.Games, "meanTurns", stats.Mean())
	return stats, nil
}

// PlayGame plays one all-automated game dealt from seed
func PlayGame(ctx context.Context, seed int64, players []string, logger *log.Logger) (statistics.GameResult, error) {
	g, err := game.NewGameFromNames(randutil.New(seed), players, game.WithLogger(logger))
	if err != nil {
		return statistics.GameResult{}, err
	}

	result, err := g.Run(ctx)
	if err != nil {
		return statistics.GameResult{}, err
	}

	out := statistics.GameResult{
		Seed:    seed,
		Turns:   result.Turns,
		Winners: result.WinnerNames(),
		Players: make([]statistics.PlayerResult, len(result.Standings)),
	}
	for i, s := range result.Standings {
		out.Players[i] = statistics.PlayerResult{
			Name:   s.Name,
			Total:  s.Total,
			Busted: s.Busted,
		}
	}
	return out, nil
}

// RunSimulation is a convenience wrapper around New(...).Run
func RunSimulation(ctx context.Context, games int, players []string, seed int64, workers int, logger *log.Logger) (*statistics.Statistics, error) {
	return New(Config{
		Games:   games,
		Players: players,
		Seed:    seed,
		Workers: workers,
		Logger:  logger,
	}).Run(ctx)
}
