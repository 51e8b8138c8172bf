package game

import (
	"time"

	"github.com/lox/twentyone/internal/cards"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeGameStart   EventType = "game_start"
	EventTypeTurnStart   EventType = "turn_start"
	EventTypePlayerDraw  EventType = "player_draw"
	EventTypePlayerStand EventType = "player_stand"
	EventTypePlayerBust  EventType = "player_bust"
	EventTypeGameEnd     EventType = "game_end"
)

func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything that happens during a game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// PlayerStatus is one row of the per-turn progress report
type PlayerStatus struct {
	Name     string
	Finished bool
}

// Standing is a player's final position at the end of a game
type Standing struct {
	Name   string
	Kind   Kind
	Hand   string
	Total  int
	Busted bool
	Winner bool
}

// GameStartEvent is published once before the first turn
type GameStartEvent struct {
	GameID    string
	Players   []PlayerState
	timestamp time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.timestamp }

// NewGameStartEvent creates a new game start event
func NewGameStartEvent(gameID string, players []PlayerState, at time.Time) GameStartEvent {
	return GameStartEvent{GameID: gameID, Players: players, timestamp: at}
}

// TurnStartEvent reports every player's status at the top of a turn cycle.
// It is also published for the final check that ends the game.
type TurnStartEvent struct {
	GameID    string
	Turn      int // 1-based
	Statuses  []PlayerStatus
	timestamp time.Time
}

func (e TurnStartEvent) EventType() EventType { return EventTypeTurnStart }
func (e TurnStartEvent) Timestamp() time.Time { return e.timestamp }

// NewTurnStartEvent creates a new turn start event
func NewTurnStartEvent(gameID string, turn int, statuses []PlayerStatus, at time.Time) TurnStartEvent {
	return TurnStartEvent{GameID: gameID, Turn: turn, Statuses: statuses, timestamp: at}
}

// PlayerDrawEvent is published after a player draws a card
type PlayerDrawEvent struct {
	Player    PlayerState
	Card      cards.Card
	timestamp time.Time
}

func (e PlayerDrawEvent) EventType() EventType { return EventTypePlayerDraw }
func (e PlayerDrawEvent) Timestamp() time.Time { return e.timestamp }

// NewPlayerDrawEvent creates a new player draw event
func NewPlayerDrawEvent(player PlayerState, card cards.Card, at time.Time) PlayerDrawEvent {
	return PlayerDrawEvent{Player: player, Card: card, timestamp: at}
}

// PlayerStandEvent is published when a player declines to draw
type PlayerStandEvent struct {
	Player    PlayerState
	timestamp time.Time
}

func (e PlayerStandEvent) EventType() EventType { return EventTypePlayerStand }
func (e PlayerStandEvent) Timestamp() time.Time { return e.timestamp }

// NewPlayerStandEvent creates a new player stand event
func NewPlayerStandEvent(player PlayerState, at time.Time) PlayerStandEvent {
	return PlayerStandEvent{Player: player, timestamp: at}
}

// PlayerBustEvent is published when a draw takes a player over BustThreshold
type PlayerBustEvent struct {
	Player    PlayerState
	timestamp time.Time
}

func (e PlayerBustEvent) EventType() EventType { return EventTypePlayerBust }
func (e PlayerBustEvent) Timestamp() time.Time { return e.timestamp }

// NewPlayerBustEvent creates a new player bust event
func NewPlayerBustEvent(player PlayerState, at time.Time) PlayerBustEvent {
	return PlayerBustEvent{Player: player, timestamp: at}
}

// GameEndEvent is published once every player is finished
type GameEndEvent struct {
	GameID    string
	Turns     int
	Winners   []string // empty when every player busted
	Standings []Standing
	timestamp time.Time
}

func (e GameEndEvent) EventType() EventType { return EventTypeGameEnd }
func (e GameEndEvent) Timestamp() time.Time { return e.timestamp }

// NewGameEndEvent creates a new game end event
func NewGameEndEvent(gameID string, turns int, winners []string, standings []Standing, at time.Time) GameEndEvent {
	return GameEndEvent{
		GameID:    gameID,
		Turns:     turns,
		Winners:   winners,
		Standings: standings,
		timestamp: at,
	}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to EventSubscriber
type EventSubscriberFunc func(event GameEvent)

func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus. Publish delivers to
// subscribers in subscription order before returning.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber. Func subscribers are not comparable and
// cannot be removed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	if _, ok := subscriber.(EventSubscriberFunc); ok {
		return
	}
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
