package game

import "errors"

var (
	// ErrInvalidConfig wraps every game construction failure
	ErrInvalidConfig = errors.New("invalid game configuration")

	ErrNoPlayers     = errors.New("at least one player is required")
	ErrInvalidName   = errors.New("invalid player name")
	ErrDuplicateName = errors.New("duplicate player name")
	ErrNoCardSource  = errors.New("card source is required")
)
