package game

import (
	"context"
	"sync"

	"github.com/lox/twentyone/internal/cards"
)

// eventRecorder collects published events in order
type eventRecorder struct {
	mu     sync.Mutex
	events []GameEvent
}

func (r *eventRecorder) OnEvent(event GameEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *eventRecorder) types() []EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType()
	}
	return out
}

func (r *eventRecorder) turnStarts() []TurnStartEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []TurnStartEvent
	for _, e := range r.events {
		if ts, ok := e.(TurnStartEvent); ok {
			out = append(out, ts)
		}
	}
	return out
}

// scriptedProvider answers draw questions from a fixed script, then declines
type scriptedProvider struct {
	answers []bool
	asked   []PlayerState
}

func (s *scriptedProvider) Decide(state PlayerState) bool {
	s.asked = append(s.asked, state)
	if len(s.asked) > len(s.answers) {
		return false
	}
	return s.answers[len(s.asked)-1]
}

// presenterLog records every hand it is shown
type presenterLog struct {
	shown []PlayerState
}

func (p *presenterLog) Present(state PlayerState) {
	p.shown = append(p.shown, state)
}

// countingPacer counts pauses without waiting
type countingPacer struct {
	pauses int
}

func (c *countingPacer) Pause(context.Context) {
	c.pauses++
}

func hand(values ...int) *cards.Hand {
	h := cards.NewHand()
	for _, v := range values {
		h.AddCard(cards.NewCard(v))
	}
	return h
}
