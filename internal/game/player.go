package game

import (
	"github.com/lox/twentyone/internal/cards"
)

// BustThreshold is the highest total that still scores
const BustThreshold = 21

// Kind distinguishes how a player makes decisions
type Kind int

const (
	Automated Kind = iota
	Interactive
)

func (k Kind) String() string {
	switch k {
	case Automated:
		return "automated"
	case Interactive:
		return "interactive"
	default:
		return "unknown"
	}
}

// Player is a seat in the game: a name, a hand and a finished flag
type Player struct {
	Name string
	Kind Kind

	hand     *cards.Hand
	agent    Agent
	finished bool
}

// NewPlayer creates a player holding hand, deciding via agent
func NewPlayer(name string, kind Kind, hand *cards.Hand, agent Agent) *Player {
	if hand == nil {
		hand = cards.NewHand()
	}
	return &Player{
		Name:  name,
		Kind:  kind,
		hand:  hand,
		agent: agent,
	}
}

// NewAutomatedPlayer creates a player using the threshold strategy
func NewAutomatedPlayer(name string, hand *cards.Hand) *Player {
	return NewPlayer(name, Automated, hand, AutomatedAgent{})
}

// NewInteractivePlayer creates a player whose decisions come from provider
func NewInteractivePlayer(name string, hand *cards.Hand, provider DecisionProvider, presenter ResultPresenter) *Player {
	return NewPlayer(name, Interactive, hand, NewInteractiveAgent(provider, presenter))
}

// Hand returns the player's hand
func (p *Player) Hand() *cards.Hand {
	return p.hand
}

// DecideDraw asks the player's agent whether to draw
func (p *Player) DecideDraw() bool {
	if p.agent == nil {
		return false
	}
	return p.agent.DecideDraw(p.State())
}

// ShowDrawResult passes the current hand to the player's agent
func (p *Player) ShowDrawResult() {
	if p.agent != nil {
		p.agent.ShowDrawResult(p.State())
	}
}

// DrawRandom draws one card from src into the hand and returns it
func (p *Player) DrawRandom(src cards.Source) cards.Card {
	card := cards.RandomCard(src)
	p.hand.AddCard(card)
	return card
}

// MarkFinished ends the player's turns for the rest of the game
func (p *Player) MarkFinished() {
	p.finished = true
}

// Finished reports whether the player has stood or busted
func (p *Player) Finished() bool {
	return p.finished
}

// Score returns the hand total, or false when the player has busted
func (p *Player) Score() (int, bool) {
	total := p.hand.Total()
	if total > BustThreshold {
		return 0, false
	}
	return total, true
}

// Busted reports whether the hand total exceeds BustThreshold
func (p *Player) Busted() bool {
	_, ok := p.Score()
	return !ok
}

// State returns a snapshot for agents and events
func (p *Player) State() PlayerState {
	return PlayerState{
		Name:     p.Name,
		Kind:     p.Kind,
		Hand:     p.hand.String(),
		Total:    p.hand.Total(),
		Finished: p.finished,
	}
}
