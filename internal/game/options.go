package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/twentyone/internal/gameid"
)

// GameOption configures a Game during creation
type GameOption func(*gameConfig)

type gameConfig struct {
	id        string
	logger    *log.Logger
	bus       EventBus
	pacer     Pacer
	clock     quartz.Clock
	provider  DecisionProvider
	presenter ResultPresenter
}

func defaultGameConfig() *gameConfig {
	return &gameConfig{
		logger: log.NewWithOptions(io.Discard, log.Options{}),
		pacer:  NoPacer{},
		clock:  quartz.NewReal(),
	}
}

// WithGameID sets the game ID instead of generating one
func WithGameID(id string) GameOption {
	return func(c *gameConfig) { c.id = id }
}

// WithLogger sets the engine logger. Default discards everything.
func WithLogger(logger *log.Logger) GameOption {
	return func(c *gameConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithEventBus publishes game events to bus
func WithEventBus(bus EventBus) GameOption {
	return func(c *gameConfig) { c.bus = bus }
}

// WithPacer sets the pause taken after each player's turn
func WithPacer(pacer Pacer) GameOption {
	return func(c *gameConfig) {
		if pacer != nil {
			c.pacer = pacer
		}
	}
}

// WithClock sets the clock used for event timestamps
func WithClock(clock quartz.Clock) GameOption {
	return func(c *gameConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithInteractive sets the provider and presenter given to interactive
// players created by NewGameFromNames
func WithInteractive(provider DecisionProvider, presenter ResultPresenter) GameOption {
	return func(c *gameConfig) {
		c.provider = provider
		c.presenter = presenter
	}
}

func (c *gameConfig) gameID() string {
	if c.id == "" {
		c.id = gameid.Generate()
	}
	return c.id
}
