package uno

import "errors"

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// ErrNoPlayer is returned when a player index is out of range
var ErrNoPlayer = UserError("no player at that index")

// ErrEmptyDeck is returned by callers that need a card when the deck has none left
var ErrEmptyDeck = UserError("the deck is empty")

// ErrNegativeTurn is returned when a decoded player has a turn below zero
var ErrNegativeTurn = errors.New("turn cannot be negative")

// ErrMissingCurrentCard is returned when a decoded game has no face-up card
var ErrMissingCurrentCard = errors.New("game has no current card")

// ErrInvalidCurrentCard is returned when the decoded face-up card pairs a color and kind that cannot exist
var ErrInvalidCurrentCard = errors.New("game has an invalid current card")
