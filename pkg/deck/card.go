package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/color"
)

// ErrUnknownColor is returned when decoding a color that isn't one of the five card colors
var ErrUnknownColor = errors.New("unknown card color")

// ErrUnknownKind is returned when decoding a kind that isn't a known rank or action
var ErrUnknownKind = errors.New("unknown card kind")

// Color represents a card color
type Color string

// color constants
const (
	Red    Color = "Red"
	Blue   Color = "Blue"
	Green  Color = "Green"
	Yellow Color = "Yellow"
	Wild   Color = "Wild"
)

// SuitColors are the four colors that carry ranks and colored actions
var SuitColors = []Color{Red, Blue, Green, Yellow}

// Valid returns true if c is one of the known colors
func (c Color) Valid() bool {
	switch c {
	case Red, Blue, Green, Yellow, Wild:
		return true
	}

	return false
}

// UnmarshalJSON rejects unknown colors
func (c *Color) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if !Color(s).Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}

	*c = Color(s)
	return nil
}

// Kind is the rank or action of a card
type Kind string

// numeric ranks
const (
	Zero  Kind = "Zero"
	One   Kind = "One"
	Two   Kind = "Two"
	Three Kind = "Three"
	Four  Kind = "Four"
	Five  Kind = "Five"
	Six   Kind = "Six"
	Seven Kind = "Seven"
	Eight Kind = "Eight"
	Nine  Kind = "Nine"
)

// action kinds
const (
	WildCard Kind = "WildCard"
	DrawFour Kind = "DrawFour"
	DrawTwo  Kind = "DrawTwo"
	Cancel   Kind = "Cancel"
	Reverse  Kind = "Reverse"
)

// Ranks are the numeric kinds in ascending order
var Ranks = []Kind{Zero, One, Two, Three, Four, Five, Six, Seven, Eight, Nine}

// Valid returns true if k is a known rank or action
func (k Kind) Valid() bool {
	return k.IsAction() || k.Number() >= 0
}

// IsAction returns true if the kind triggers an effect instead of carrying a number
func (k Kind) IsAction() bool {
	switch k {
	case WildCard, DrawFour, DrawTwo, Cancel, Reverse:
		return true
	}

	return false
}

// IsWild returns true for the kinds that are not tied to a color
func (k Kind) IsWild() bool {
	return k == WildCard || k == DrawFour
}

// Number returns the numeric value of a rank, or -1 for actions
func (k Kind) Number() int {
	for i, rank := range Ranks {
		if rank == k {
			return i
		}
	}

	return -1
}

// UnmarshalJSON rejects unknown kinds
func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if !Kind(s).Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}

	*k = Kind(s)
	return nil
}

// Card is an individual playing card
// Cards are values; copying a card never shares state
type Card struct {
	Color Color `json:"color"`
	Kind  Kind  `json:"kind"`
}

// Valid returns true if the color and kind pair can exist in a deck
// WildCard and DrawFour are always Wild, every other kind is never Wild
func (c Card) Valid() bool {
	if !c.Color.Valid() || !c.Kind.Valid() {
		return false
	}

	return c.Kind.IsWild() == (c.Color == Wild)
}

var colorCodes = map[Color]string{
	Red:    "r",
	Blue:   "b",
	Green:  "g",
	Yellow: "y",
	Wild:   "w",
}

var actionCodes = map[Kind]string{
	WildCard: "WILD",
	DrawFour: "D4",
	DrawTwo:  "D2",
	Cancel:   "CAN",
	Reverse:  "REV",
}

func (c Card) String() string {
	code, ok := colorCodes[c.Color]
	if !ok {
		panic("unknown color")
	}

	if n := c.Kind.Number(); n >= 0 {
		return fmt.Sprintf("%s%d", code, n)
	}

	action, ok := actionCodes[c.Kind]
	if !ok {
		panic("unknown kind")
	}

	return code + action
}

var paintAttributes = map[Color]color.Attribute{
	Red:    color.FgRed,
	Blue:   color.FgBlue,
	Green:  color.FgGreen,
	Yellow: color.FgYellow,
	Wild:   color.FgMagenta,
}

// Paint returns the card string colored for a terminal
func (c Card) Paint() string {
	return color.New(paintAttributes[c.Color], color.Bold).Sprint(c.String())
}

var cardRx = regexp.MustCompile(`(?i)^([rbgyw])([0-9]|rev|d2|can|wild|d4)\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <color><kind> where color in [rbgyw] and kind is
// a digit or one of REV, D2, CAN, WILD, D4. The returned card is not validated.
func CardFromString(s string) Card {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	var c Card
	for clr, code := range colorCodes {
		if strings.EqualFold(code, match[1]) {
			c.Color = clr
		}
	}

	if match[2][0] >= '0' && match[2][0] <= '9' {
		c.Kind = Ranks[match[2][0]-'0']
		return c
	}

	for kind, code := range actionCodes {
		if strings.EqualFold(code, match[2]) {
			c.Kind = kind
		}
	}

	return c
}

// CardsFromString will return a slice of cards
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of r0,bREV,wD4,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}
