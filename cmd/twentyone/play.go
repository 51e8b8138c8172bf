package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/twentyone/cmd/twentyone/shared"
	"github.com/lox/twentyone/internal/config"
	"github.com/lox/twentyone/internal/display"
	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/randutil"
)

type PlayCmd struct {
	Players []string      `arg:"" optional:"" help:"Player names in seat order; names starting with 'com' are computer players"`
	Seed    int64         `help:"RNG seed (0 uses config, then random)"`
	Pace    time.Duration `help:"Pause after each player (overrides config)"`
	NoPace  bool          `help:"Do not pause between players"`
	NoColor bool          `help:"Disable coloured output"`
	LogFile string        `help:"Write engine logs to this file" type:"path"`

	stdin  io.Reader `kong:"-"`
	stdout io.Writer `kong:"-"`
}

func (c *PlayCmd) Run(globals *Globals) error {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return err
	}

	settings, err := c.resolve(cfg, globals.Debug)
	if err != nil {
		return err
	}

	logFile := c.LogFile
	if logFile == "" {
		logFile = cfg.Log.File
	}
	var fallback io.Writer
	if globals.Debug {
		fallback = os.Stderr
	}
	logger, closeLog, err := shared.SetupLogger(shared.LoggerOptions{
		Level:    settings.level,
		File:     logFile,
		Prefix:   "play",
		Fallback: fallback,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLog(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	ctx, stop := shared.SetupSignalHandler(logger)
	defer stop()

	stdin, stdout := c.streams()
	styles := display.NewStyles(stdout, settings.color)
	prompter := display.NewPrompter(stdin, stdout, styles)

	bus := game.NewEventBus()
	bus.Subscribe(display.NewReporter(stdout, styles, game.FormattingOptions{ShowTotals: true}))

	logger.Info("Starting game", "players", settings.players, "seed", settings.seed, "pace", settings.pace)

	g, err := game.NewGameFromNames(randutil.New(settings.seed), settings.players,
		game.WithInteractive(prompter, prompter),
		game.WithEventBus(bus),
		game.WithLogger(logger),
		game.WithPacer(game.NewClockPacer(quartz.NewReal(), settings.pace)),
	)
	if err != nil {
		return err
	}

	result, err := g.Run(ctx)
	if err != nil {
		return fmt.Errorf("game %s stopped: %w", g.ID(), err)
	}

	logger.Info("Game over", "game", result.GameID, "turns", result.Turns, "winners", result.WinnerNames())
	return nil
}

type playSettings struct {
	players []string
	seed    int64
	pace    time.Duration
	color   bool
	level   log.Level
}

// resolve merges flags over the config file
func (c *PlayCmd) resolve(cfg *config.Config, debug bool) (playSettings, error) {
	s := playSettings{
		players: cfg.Game.Players,
		seed:    cfg.Game.Seed,
		color:   cfg.ColorEnabled() && !c.NoColor,
	}

	if len(c.Players) > 0 {
		s.players = c.Players
	}
	if c.Seed != 0 {
		s.seed = c.Seed
	}
	s.seed = randutil.Seed(s.seed)

	pace, err := cfg.PaceDuration()
	if err != nil {
		return s, err
	}
	if c.Pace > 0 {
		pace = c.Pace
	}
	if c.NoPace {
		pace = 0
	}
	s.pace = pace

	level, err := cfg.LogLevel()
	if err != nil {
		return s, err
	}
	if debug {
		level = log.DebugLevel
	}
	s.level = level

	return s, nil
}

func (c *PlayCmd) streams() (io.Reader, io.Writer) {
	in, out := c.stdin, c.stdout
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return in, out
}
