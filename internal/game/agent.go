package game

// PlayerState is a read-only snapshot of a player handed to agents
type PlayerState struct {
	Name     string
	Kind     Kind
	Hand     string // display form, e.g. "[5] [4] = 9"
	Total    int
	Finished bool
}

// Agent decides for a player whether to draw another card.
// Agents never mutate game state; the engine applies the decision.
type Agent interface {
	// DecideDraw returns true to draw another card
	DecideDraw(state PlayerState) bool
	// ShowDrawResult is called after every card the player draws
	ShowDrawResult(state PlayerState)
}

// DecisionProvider answers the draw question for interactive players
type DecisionProvider interface {
	Decide(state PlayerState) bool
}

// DecisionProviderFunc adapts a function to DecisionProvider
type DecisionProviderFunc func(state PlayerState) bool

func (f DecisionProviderFunc) Decide(state PlayerState) bool { return f(state) }

// ResultPresenter shows an interactive player their hand after a draw
type ResultPresenter interface {
	Present(state PlayerState)
}

// ResultPresenterFunc adapts a function to ResultPresenter
type ResultPresenterFunc func(state PlayerState)

func (f ResultPresenterFunc) Present(state PlayerState) { f(state) }
