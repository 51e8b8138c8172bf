package game

import (
	"strings"

	"github.com/lox/twentyone/internal/cards"
)

const (
	// AutomatedPrefix marks a player name as automated
	AutomatedPrefix = "com"
	// InitialCards is how many cards each player is dealt at setup
	InitialCards = 2
)

// KindForName returns Automated for names starting with AutomatedPrefix
func KindForName(name string) Kind {
	if strings.HasPrefix(name, AutomatedPrefix) {
		return Automated
	}
	return Interactive
}

// DealInitialHand draws InitialCards cards from src
func DealInitialHand(src cards.Source) *cards.Hand {
	hand := cards.NewHand()
	for range InitialCards {
		hand.AddCard(cards.RandomCard(src))
	}
	return hand
}

// NewGameFromNames validates names, seats a player per name in order and
// deals each two cards from src. Interactive players use the provider and
// presenter set by WithInteractive.
func NewGameFromNames(src cards.Source, names []string, opts ...GameOption) (*Game, error) {
	cfg := defaultGameConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := ValidateNames(names); err != nil {
		return nil, err
	}
	if src == nil {
		return newGame(nil, nil, cfg)
	}

	players := make([]*Player, len(names))
	for i, name := range names {
		hand := DealInitialHand(src)
		switch KindForName(name) {
		case Automated:
			players[i] = NewAutomatedPlayer(name, hand)
		default:
			players[i] = NewInteractivePlayer(name, hand, cfg.provider, cfg.presenter)
		}
	}

	return newGame(src, players, cfg)
}
