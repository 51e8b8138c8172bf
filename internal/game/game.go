package game

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/twentyone/internal/cards"
)

// State is the turn loop's position
type State int

const (
	InProgress State = iota
	AllFinished
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case AllFinished:
		return "all_finished"
	default:
		return "unknown"
	}
}

// Game runs a fixed list of players through turn cycles until all are finished.
// A Game is single-use and not safe for concurrent use.
type Game struct {
	id      string
	players []*Player
	src     cards.Source
	logger  *log.Logger
	bus     EventBus
	pacer   Pacer
	clock   quartz.Clock
	turn    int
}

// Result summarises a completed game
type Result struct {
	GameID    string
	Turns     int
	Winners   []*Player
	Standings []Standing
}

// WinnerNames returns the winners' names in seat order
func (r *Result) WinnerNames() []string {
	names := make([]string, len(r.Winners))
	for i, p := range r.Winners {
		names[i] = p.Name
	}
	return names
}

// NewGame creates a game over players, drawing cards from src. Seat order is
// the order of players and never changes.
func NewGame(src cards.Source, players []*Player, opts ...GameOption) (*Game, error) {
	cfg := defaultGameConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return newGame(src, players, cfg)
}

func newGame(src cards.Source, players []*Player, cfg *gameConfig) (*Game, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, ErrNoCardSource)
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, ErrNoPlayers)
	}

	names := make([]string, len(players))
	for i, p := range players {
		if p == nil {
			return nil, fmt.Errorf("%w: player %d is nil", ErrInvalidConfig, i)
		}
		names[i] = p.Name
	}
	if err := ValidateNames(names); err != nil {
		return nil, err
	}

	seats := make([]*Player, len(players))
	copy(seats, players)

	id := cfg.gameID()
	return &Game{
		id:      id,
		players: seats,
		src:     src,
		logger:  cfg.logger.With("game", id),
		bus:     cfg.bus,
		pacer:   cfg.pacer,
		clock:   cfg.clock,
	}, nil
}

// ValidateNames checks a player list the way game construction does
func ValidateNames(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrNoPlayers)
	}
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if err := validateName(name); err != nil {
			return fmt.Errorf("%w: player %d: %w", ErrInvalidConfig, i, err)
		}
		if seen[name] {
			return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, ErrDuplicateName, name)
		}
		seen[name] = true
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is blank", ErrInvalidName)
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("%w: %q contains whitespace or control characters", ErrInvalidName, name)
		}
	}
	return nil
}

// ID returns the game's identifier
func (g *Game) ID() string {
	return g.id
}

// Players returns the players in seat order
func (g *Game) Players() []*Player {
	out := make([]*Player, len(g.players))
	copy(out, g.players)
	return out
}

// Turn returns the number of completed turn cycles
func (g *Game) Turn() int {
	return g.turn
}

// State returns AllFinished once every player is finished
func (g *Game) State() State {
	if g.IsAllFinished() {
		return AllFinished
	}
	return InProgress
}

// IsAllFinished reports whether every player has stood or busted
func (g *Game) IsAllFinished() bool {
	for _, p := range g.players {
		if !p.Finished() {
			return false
		}
	}
	return true
}

// Step plays one turn cycle. Each unfinished player, in seat order, decides
// whether to draw. Drawing past BustThreshold busts the player; declining
// stands. The pacer runs after every seat, finished or not.
func (g *Game) Step(ctx context.Context) {
	for _, p := range g.players {
		if !p.Finished() {
			g.takeTurn(p)
		}
		g.pacer.Pause(ctx)
	}
}

func (g *Game) takeTurn(p *Player) {
	if !p.DecideDraw() {
		p.MarkFinished()
		g.logger.Debug("Player stands", "player", p.Name, "total", p.Hand().Total())
		g.publish(NewPlayerStandEvent(p.State(), g.clock.Now()))
		return
	}

	card := p.DrawRandom(g.src)
	p.ShowDrawResult()
	g.logger.Debug("Player draws", "player", p.Name, "card", card.Value(), "total", p.Hand().Total())
	g.publish(NewPlayerDrawEvent(p.State(), card, g.clock.Now()))

	if p.Busted() {
		p.MarkFinished()
		g.logger.Debug("Player busts", "player", p.Name, "total", p.Hand().Total())
		g.publish(NewPlayerBustEvent(p.State(), g.clock.Now()))
	}
}

// Run plays turn cycles until every player is finished and returns the
// result. ctx is only checked between cycles; a turn in progress always
// completes.
func (g *Game) Run(ctx context.Context) (*Result, error) {
	g.logger.Debug("Starting game", "players", len(g.players))
	g.publish(NewGameStartEvent(g.id, g.states(), g.clock.Now()))

	for {
		if err := ctx.Err(); err != nil {
			g.logger.Debug("Game cancelled", "turn", g.turn+1)
			return nil, err
		}

		g.publish(NewTurnStartEvent(g.id, g.turn+1, g.statuses(), g.clock.Now()))
		if g.IsAllFinished() {
			break
		}

		g.Step(ctx)
		g.turn++
	}

	result := g.result()
	g.logger.Debug("Game complete", "turns", result.Turns, "winners", result.WinnerNames())
	g.publish(NewGameEndEvent(g.id, result.Turns, result.WinnerNames(), result.Standings, g.clock.Now()))

	return result, nil
}

// Winners returns every player tied at the highest non-busted score, in seat
// order. It returns an empty slice when every player busted.
func (g *Game) Winners() []*Player {
	best := 0
	found := false
	for _, p := range g.players {
		score, ok := p.Score()
		if !ok {
			continue
		}
		if !found || score > best {
			best = score
			found = true
		}
	}

	winners := make([]*Player, 0, len(g.players))
	if !found {
		return winners
	}
	for _, p := range g.players {
		if score, ok := p.Score(); ok && score == best {
			winners = append(winners, p)
		}
	}
	return winners
}

func (g *Game) result() *Result {
	winners := g.Winners()
	isWinner := make(map[*Player]bool, len(winners))
	for _, w := range winners {
		isWinner[w] = true
	}

	standings := make([]Standing, len(g.players))
	for i, p := range g.players {
		standings[i] = Standing{
			Name:   p.Name,
			Kind:   p.Kind,
			Hand:   p.Hand().String(),
			Total:  p.Hand().Total(),
			Busted: p.Busted(),
			Winner: isWinner[p],
		}
	}

	return &Result{
		GameID:    g.id,
		Turns:     g.turn,
		Winners:   winners,
		Standings: standings,
	}
}

func (g *Game) statuses() []PlayerStatus {
	statuses := make([]PlayerStatus, len(g.players))
	for i, p := range g.players {
		statuses[i] = PlayerStatus{Name: p.Name, Finished: p.Finished()}
	}
	return statuses
}

func (g *Game) states() []PlayerState {
	states := make([]PlayerState, len(g.players))
	for i, p := range g.players {
		states[i] = p.State()
	}
	return states
}

func (g *Game) publish(event GameEvent) {
	if g.bus != nil {
		g.bus.Publish(event)
	}
}
