// Package statistics aggregates the outcomes of many simulated games.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// PlayerResult is one player's final hand in a game
type PlayerResult struct {
	Name   string
	Total  int
	Busted bool
}

// GameResult represents the outcome of a single game
type GameResult struct {
	Seed    int64 // RNG seed for this game (for replay)
	Turns   int
	Winners []string
	Players []PlayerResult
}

// PlayerStats tracks one seat across games
type PlayerStats struct {
	Games      int
	Wins       int // includes shared wins
	SharedWins int
	Busts      int
	SumScore   int // totals of non-busted hands
}

// Statistics tracks simulation results. Turn counts per game feed the
// distribution helpers (Mean, Median, ...).
type Statistics struct {
	Games         int
	NoWinnerGames int
	SumTurns      float64
	SumTurns2     float64   // Sum of squares for variance calculation
	Values        []float64 // Turns per game, for median/percentile

	players map[string]*PlayerStats
	order   []string
}

// Add incorporates a game result
func (s *Statistics) Add(result GameResult) {
	turns := float64(result.Turns)
	s.Games++
	s.SumTurns += turns
	s.SumTurns2 += turns * turns
	s.Values = append(s.Values, turns)

	if len(result.Winners) == 0 {
		s.NoWinnerGames++
	}

	winners := make(map[string]bool, len(result.Winners))
	for _, w := range result.Winners {
		winners[w] = true
	}

	for _, p := range result.Players {
		ps := s.player(p.Name)
		ps.Games++
		if p.Busted {
			ps.Busts++
		} else {
			ps.SumScore += p.Total
		}
		if winners[p.Name] {
			ps.Wins++
			if len(result.Winners) > 1 {
				ps.SharedWins++
			}
		}
	}
}

// Merge folds other into s. Per-game values keep their relative order.
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.NoWinnerGames += other.NoWinnerGames
	s.SumTurns += other.SumTurns
	s.SumTurns2 += other.SumTurns2
	s.Values = append(s.Values, other.Values...)

	for _, name := range other.order {
		src := other.players[name]
		dst := s.player(name)
		dst.Games += src.Games
		dst.Wins += src.Wins
		dst.SharedWins += src.SharedWins
		dst.Busts += src.Busts
		dst.SumScore += src.SumScore
	}
}

func (s *Statistics) player(name string) *PlayerStats {
	if s.players == nil {
		s.players = make(map[string]*PlayerStats)
	}
	ps, ok := s.players[name]
	if !ok {
		ps = &PlayerStats{}
		s.players[name] = ps
		s.order = append(s.order, name)
	}
	return ps
}

// PlayerNames returns players in the order they were first seen
func (s *Statistics) PlayerNames() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Player returns the stats for name, or zero stats if never seen
func (s *Statistics) Player(name string) PlayerStats {
	if ps, ok := s.players[name]; ok {
		return *ps
	}
	return PlayerStats{}
}

// WinRate returns the fraction of games name won, shared wins included
func (s *Statistics) WinRate(name string) float64 {
	ps := s.Player(name)
	if ps.Games == 0 {
		return 0
	}
	return float64(ps.Wins) / float64(ps.Games)
}

// BustRate returns the fraction of games name busted
func (s *Statistics) BustRate(name string) float64 {
	ps := s.Player(name)
	if ps.Games == 0 {
		return 0
	}
	return float64(ps.Busts) / float64(ps.Games)
}

// MeanScore returns the mean final total over games name did not bust
func (s *Statistics) MeanScore(name string) float64 {
	ps := s.Player(name)
	scored := ps.Games - ps.Busts
	if scored == 0 {
		return 0
	}
	return float64(ps.SumScore) / float64(scored)
}

// Mean returns the mean number of turns per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumTurns / float64(s.Games)
}

// Variance returns the sample variance of turns per game
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumTurns2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of turns per game
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median number of turns
func (s *Statistics) Median() float64 {
	n := len(s.Values)
	if n == 0 {
		return 0
	}
	sorted := s.sortedValues()
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sortedValues()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Statistics) sortedValues() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// Validate checks the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid game count: %d", s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("values length mismatch: len(Values)=%d, Games=%d", len(s.Values), s.Games)
	}
	if s.NoWinnerGames > s.Games {
		return fmt.Errorf("no-winner games %d exceed games %d", s.NoWinnerGames, s.Games)
	}
	for _, name := range s.order {
		ps := s.players[name]
		if ps.Games > s.Games {
			return fmt.Errorf("player %s played %d of %d games", name, ps.Games, s.Games)
		}
		if ps.Wins+ps.Busts > ps.Games {
			return fmt.Errorf("player %s has %d wins and %d busts in %d games", name, ps.Wins, ps.Busts, ps.Games)
		}
		if ps.SharedWins > ps.Wins {
			return fmt.Errorf("player %s has more shared wins (%d) than wins (%d)", name, ps.SharedWins, ps.Wins)
		}
	}
	return nil
}

// PlayerSummary is the per-player part of a Summary
type PlayerSummary struct {
	Name       string  `json:"name"`
	Games      int     `json:"games"`
	Wins       int     `json:"wins"`
	SharedWins int     `json:"shared_wins"`
	Busts      int     `json:"busts"`
	WinRate    float64 `json:"win_rate"`
	BustRate   float64 `json:"bust_rate"`
	MeanScore  float64 `json:"mean_score"`
}

// Summary is a serialisable snapshot of the statistics
type Summary struct {
	Games         int             `json:"games"`
	NoWinnerGames int             `json:"no_winner_games"`
	MeanTurns     float64         `json:"mean_turns"`
	StdDevTurns   float64         `json:"stddev_turns"`
	MedianTurns   float64         `json:"median_turns"`
	Players       []PlayerSummary `json:"players"`
}

// Summary returns the headline numbers in player order
func (s *Statistics) Summary() Summary {
	out := Summary{
		Games:         s.Games,
		NoWinnerGames: s.NoWinnerGames,
		MeanTurns:     s.Mean(),
		StdDevTurns:   s.StdDev(),
		MedianTurns:   s.Median(),
		Players:       make([]PlayerSummary, 0, len(s.order)),
	}
	for _, name := range s.order {
		ps := s.Player(name)
		out.Players = append(out.Players, PlayerSummary{
			Name:       name,
			Games:      ps.Games,
			Wins:       ps.Wins,
			SharedWins: ps.SharedWins,
			Busts:      ps.Busts,
			WinRate:    s.WinRate(name),
			BustRate:   s.BustRate(name),
			MeanScore:  s.MeanScore(name),
		})
	}
	return out
}
