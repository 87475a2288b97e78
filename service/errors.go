package service

import "errors"

// Sentinel errors returned by the game services. Handlers map these onto
// HTTP status codes.
var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrCardNotFound      = errors.New("card not found")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrSessionNotPlaying = errors.New("session is not in a playing state")
	ErrCardNotInHand     = errors.New("card is not in the player's hand")
	ErrIndexOutOfRange   = errors.New("proposed index is out of range")
	ErrVerdictMismatch   = errors.New("client verdict disagrees with server validation")
	ErrDeckExhausted     = errors.New("not enough cards available to deal a session")
)
