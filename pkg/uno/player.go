package uno

import (
	"encoding/json"
	"fmt"
	"uno-server/pkg/deck"
)

// Player is a seat in the game
// Turn is the order index of the player; uniqueness across a game is not enforced
type Player struct {
	name  string
	turn  int
	cards deck.Hand
}

type playerJSON struct {
	Name  string    `json:"name"`
	Turn  int       `json:"turn"`
	Cards deck.Hand `json:"cards"`
}

// NewPlayer returns a player with no name, turn 0 and an empty hand
func NewPlayer() *Player {
	return &Player{
		cards: deck.Hand{},
	}
}

// SetName sets the player's name
func (p *Player) SetName(name string) {
	p.name = name
}

// SetTurn sets the player's turn index
// Turn indexes are never negative; passing one is a programming error and panics
func (p *Player) SetTurn(turn int) {
	if turn < 0 {
		panic("turn cannot be negative")
	}

	p.turn = turn
}

// Name returns the player's name
func (p *Player) Name() string {
	return p.name
}

// Turn returns the player's turn index
func (p *Player) Turn() int {
	return p.turn
}

// Cards returns a copy of the player's hand
func (p *Player) Cards() deck.Hand {
	return p.cards.Clone()
}

// AddCard adds a card to the player's hand
func (p *Player) AddCard(card deck.Card) {
	p.cards.AddCard(card)
}

// RemoveCard removes a card from the player's hand
// Returns false if the player doesn't hold the card
func (p *Player) RemoveCard(card deck.Card) bool {
	return p.cards.Remove(card)
}

// MarshalJSON encodes the player
func (p *Player) MarshalJSON() ([]byte, error) {
	cards := p.cards
	if cards == nil {
		cards = deck.Hand{}
	}

	return json.Marshal(playerJSON{
		Name:  p.name,
		Turn:  p.turn,
		Cards: cards,
	})
}

// UnmarshalJSON decodes the player
func (p *Player) UnmarshalJSON(b []byte) error {
	pj := playerJSON{Cards: deck.Hand{}}
	if err := json.Unmarshal(b, &pj); err != nil {
		return err
	}

	if pj.Turn < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeTurn, pj.Turn)
	}

	if pj.Cards == nil {
		pj.Cards = deck.Hand{}
	}

	p.name = pj.Name
	p.turn = pj.Turn
	p.cards = pj.Cards
	return nil
}
