package game

// DrawThreshold is the highest total at which an automated player still draws
const DrawThreshold = 16

// AutomatedAgent draws while its total is at or below DrawThreshold
type AutomatedAgent struct{}

// DecideDraw implements Agent
func (AutomatedAgent) DecideDraw(state PlayerState) bool {
	return state.Total <= DrawThreshold
}

// ShowDrawResult implements Agent; automated players have nobody to show.
func (AutomatedAgent) ShowDrawResult(PlayerState) {}
