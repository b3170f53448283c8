package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"encoding/json"
	"uno-server/internal/rng"
)

// StandardSize is the number of cards in a standard deck
const StandardSize = 56

// Deck represents the draw pile
// The front of the deck is the top of the pile
type Deck struct {
	cards []Card
}

// New returns a deck containing the cards in the order given
func New(cards ...Card) *Deck {
	c := make([]Card, len(cards))
	copy(c, cards)

	return &Deck{cards: c}
}

// NewStandard returns a new standard deck of cards.
// Important! this deck is unshuffled. Use Generate() for a shuffled deck
func NewStandard() *Deck {
	cards := make([]Card, 0, StandardSize)
	for _, clr := range SuitColors {
		for _, kind := range []Kind{Reverse, DrawTwo, Cancel} {
			cards = append(cards, Card{Color: clr, Kind: kind})
		}

		for _, kind := range Ranks {
			cards = append(cards, Card{Color: clr, Kind: kind})
		}
	}

	cards = append(cards,
		Card{Color: Wild, Kind: DrawFour},
		Card{Color: Wild, Kind: DrawFour},
		Card{Color: Wild, Kind: WildCard},
		Card{Color: Wild, Kind: WildCard},
	)

	return &Deck{cards: cards}
}

// Generate returns a standard deck shuffled with r
func Generate(r rng.Generator) *Deck {
	d := NewStandard()
	d.Reshuffle(r)

	return d
}

// Reshuffle randomizes the order of the cards left in the deck
func (d *Deck) Reshuffle(r rng.Generator) {
	rng.Shuffle(r, len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw will draw the next card
// If there are no more cards, false is returned and the deck is left untouched
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}

	card := d.cards[0]
	d.cards = d.cards[1:]

	return card, true
}

// PushFront puts the card back on top of the deck
func (d *Deck) PushFront(card Card) {
	d.cards = append([]Card{card}, d.cards...)
}

// PushBack puts the card at the bottom of the deck
func (d *Deck) PushBack(card Card) {
	d.cards = append(d.cards, card)
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.cards) >= want
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the cards left in the deck, top first
func (d *Deck) Cards() []Card {
	c := make([]Card, len(d.cards))
	copy(c, d.cards)

	return c
}

// Composition returns how many of each card are left in the deck
func (d *Deck) Composition() map[Card]int {
	counts := make(map[Card]int)
	for _, card := range d.cards {
		counts[card]++
	}

	return counts
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

func (d *Deck) String() string {
	return CardsToString(d.cards)
}

// MarshalJSON encodes the deck as a list of cards
func (d *Deck) MarshalJSON() ([]byte, error) {
	if d.cards == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(d.cards)
}

// UnmarshalJSON decodes a list of cards
func (d *Deck) UnmarshalJSON(b []byte) error {
	cards := make([]Card, 0)
	if err := json.Unmarshal(b, &cards); err != nil {
		return err
	}

	d.cards = cards
	return nil
}
