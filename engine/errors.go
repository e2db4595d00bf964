package engine

import "errors"

// Sentinel errors for rejected player actions; the game state is unchanged
var (
	ErrInvalidAction = errors.New("action not allowed in current state")
	ErrNoMode        = errors.New("no character set selected")
	ErrUnknownTier   = errors.New("unknown difficulty tier")
)
