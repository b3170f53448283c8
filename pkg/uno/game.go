package uno

import (
	"encoding/json"
	"fmt"
	"uno-server/internal/rng"
	"uno-server/pkg/deck"
)

// Game is the state of a single game
// A game is not safe for concurrent use; the owner must serialize access
type Game struct {
	players     []*Player
	deck        *deck.Deck
	currentCard deck.Card
}

type gameJSON struct {
	Players     []*Player  `json:"players"`
	Deck        *deck.Deck `json:"deck"`
	CurrentCard *deck.Card `json:"current_card"`
}

// NewGame returns a game with a freshly shuffled standard deck
// The top card of the deck is turned face up as the current card
func NewGame(r rng.Generator) *Game {
	return NewGameWithDeck(deck.Generate(r))
}

// NewGameWithDeck returns a game using d as the draw pile
// The top card of d becomes the current card. d must not be empty
func NewGameWithDeck(d *deck.Deck) *Game {
	card, ok := d.Draw()
	if !ok {
		panic("cannot start a game with an empty deck")
	}

	return &Game{
		players:     make([]*Player, 0),
		deck:        d,
		currentCard: card,
	}
}

// AddPlayer seats the player after every existing player
// Returns the player's index
func (g *Game) AddPlayer(p *Player) int {
	g.players = append(g.players, p)
	return len(g.players) - 1
}

// Players returns the players in the order they were added
func (g *Game) Players() []*Player {
	players := make([]*Player, len(g.players))
	copy(players, g.players)

	return players
}

// Player returns the player at index i
func (g *Game) Player(i int) (*Player, error) {
	if i < 0 || i >= len(g.players) {
		return nil, ErrNoPlayer
	}

	return g.players[i], nil
}

// Deck returns the draw pile
func (g *Game) Deck() *deck.Deck {
	return g.deck
}

// CurrentCard returns the face-up card
func (g *Game) CurrentCard() deck.Card {
	return g.currentCard
}

// SetCurrentCard replaces the face-up card
// Legality of the play is up to the caller
func (g *Game) SetCurrentCard(card deck.Card) {
	g.currentCard = card
}

// DrawCard moves the top card of the deck into the hand of the player at index i
// If the deck is empty, false is returned and nothing moves
func (g *Game) DrawCard(i int) (deck.Card, bool, error) {
	p, err := g.Player(i)
	if err != nil {
		return deck.Card{}, false, err
	}

	card, ok := g.deck.Draw()
	if !ok {
		return deck.Card{}, false, nil
	}

	p.AddCard(card)
	return card, true, nil
}

// Reshuffle randomizes the order of the cards left in the deck
func (g *Game) Reshuffle(r rng.Generator) {
	g.deck.Reshuffle(r)
}

// MarshalJSON encodes the game
func (g *Game) MarshalJSON() ([]byte, error) {
	players := g.players
	if players == nil {
		players = []*Player{}
	}

	return json.Marshal(gameJSON{
		Players:     players,
		Deck:        g.deck,
		CurrentCard: &g.currentCard,
	})
}

// UnmarshalJSON decodes the game
// The current card must be present and valid
func (g *Game) UnmarshalJSON(b []byte) error {
	var gj gameJSON
	if err := json.Unmarshal(b, &gj); err != nil {
		return err
	}

	if gj.CurrentCard == nil {
		return ErrMissingCurrentCard
	}

	if !gj.CurrentCard.Valid() {
		return fmt.Errorf("%w: %s/%s", ErrInvalidCurrentCard, gj.CurrentCard.Color, gj.CurrentCard.Kind)
	}

	if gj.Players == nil {
		gj.Players = make([]*Player, 0)
	}

	if gj.Deck == nil {
		gj.Deck = deck.New()
	}

	g.players = gj.Players
	g.deck = gj.Deck
	g.currentCard = *gj.CurrentCard
	return nil
}
