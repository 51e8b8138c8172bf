package game

// InteractiveAgent hands decisions to an external provider, typically a
// person at a console. The engine blocks until the provider answers.
type InteractiveAgent struct {
	provider  DecisionProvider
	presenter ResultPresenter
}

// NewInteractiveAgent creates an agent backed by provider and presenter.
// A nil provider always declines to draw; a nil presenter shows nothing.
func NewInteractiveAgent(provider DecisionProvider, presenter ResultPresenter) *InteractiveAgent {
	return &InteractiveAgent{provider: provider, presenter: presenter}
}

// DecideDraw implements Agent
func (a *InteractiveAgent) DecideDraw(state PlayerState) bool {
	if a.provider == nil {
		return false
	}
	return a.provider.Decide(state)
}

// ShowDrawResult implements Agent
func (a *InteractiveAgent) ShowDrawResult(state PlayerState) {
	if a.presenter != nil {
		a.presenter.Present(state)
	}
}
