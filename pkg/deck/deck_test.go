package deck

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"testing"
	"uno-server/internal/rng"
)

func TestNewStandard(t *testing.T) {
	a := assert.New(t)
	d := NewStandard()

	a.Equal(StandardSize, d.Len())
	a.Equal(CardFromString("rREV"), d.Cards()[0])
	a.Equal(CardFromString("rD2"), d.Cards()[1])
	a.Equal(CardFromString("rCAN"), d.Cards()[2])
	a.Equal(CardFromString("r0"), d.Cards()[3])
	a.Equal(CardFromString("bREV"), d.Cards()[13])
	a.Equal(CardFromString("wD4"), d.Cards()[52])
	a.Equal(CardFromString("wWILD"), d.Cards()[55])

	a.Equal("e081aee27b5370785e199382a0d2b5143fb961bb", d.HashCode())
}

func assertStandardComposition(t *testing.T, d *Deck) {
	t.Helper()
	a := assert.New(t)

	a.Equal(StandardSize, d.Len())

	wildCards, drawFours := 0, 0
	for _, card := range d.Cards() {
		a.True(card.Valid(), card.String())

		switch card.Kind {
		case WildCard:
			wildCards++
			a.Equal(Wild, card.Color)
		case DrawFour:
			drawFours++
			a.Equal(Wild, card.Color)
		default:
			a.NotEqual(Wild, card.Color)
		}
	}

	a.Equal(2, wildCards)
	a.Equal(2, drawFours)

	comp := d.Composition()
	for _, clr := range SuitColors {
		for _, kind := range append([]Kind{Reverse, DrawTwo, Cancel}, Ranks...) {
			a.Equal(1, comp[Card{Color: clr, Kind: kind}], "%s %s", clr, kind)
		}
	}

	a.Equal(NewStandard().Composition(), comp)
}

func TestGenerate(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		assertStandardComposition(t, Generate(rng.NewSeeded(seed)))
	}

	assertStandardComposition(t, Generate(rng.Crypto{}))

	// same seed, same order
	a := assert.New(t)
	d1 := Generate(rng.NewSeeded(7))
	d2 := Generate(rng.NewSeeded(7))
	a.Equal(d1.HashCode(), d2.HashCode())
	a.NotEqual(NewStandard().HashCode(), d1.HashCode())
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)
	d := NewStandard()

	a.True(d.CanDraw(56))
	a.False(d.CanDraw(57))

	for i := StandardSize; i > 0; i-- {
		a.Equal(i, d.Len())
		card, ok := d.Draw()
		a.True(ok)
		a.True(card.Valid())
		a.Equal(i-1, d.Len())
	}

	a.False(d.CanDraw(1))

	card, ok := d.Draw()
	a.False(ok)
	a.Equal(Card{}, card)
	a.Equal(0, d.Len())
}

func TestDeck_Reshuffle(t *testing.T) {
	a := assert.New(t)

	d := Generate(rng.NewSeeded(3))
	for i := 0; i < 10; i++ {
		_, _ = d.Draw()
	}

	before := d.Composition()
	d.Reshuffle(rng.NewSeeded(4))
	a.Equal(46, d.Len())
	a.Equal(before, d.Composition())

	empty := New()
	empty.Reshuffle(rng.NewSeeded(1))
	a.Equal(0, empty.Len())
}

func TestDeck_Push(t *testing.T) {
	d := New(CardsFromString("r2,r3,r4")...)
	d.PushFront(CardFromString("wD4"))
	d.PushBack(CardFromString("b1"))

	assert.Equal(t, "wD4,r2,r3,r4,b1", d.String())

	card, ok := d.Draw()
	assert.True(t, ok)
	assert.Equal(t, CardFromString("wD4"), card)
}

func TestDeck_Cards(t *testing.T) {
	d := New(CardsFromString("r2,r3")...)
	cards := d.Cards()
	cards[0] = CardFromString("wWILD")

	assert.Equal(t, "r2,r3", d.String())
}

func TestDeck_JSON(t *testing.T) {
	a := assert.New(t)

	d := New(CardsFromString("r2,wD4")...)
	b, err := json.Marshal(d)
	a.NoError(err)
	a.Equal(`[{"color":"Red","kind":"Two"},{"color":"Wild","kind":"DrawFour"}]`, string(b))

	var d2 Deck
	a.NoError(json.Unmarshal(b, &d2))
	a.Equal(d, &d2)

	b, err = json.Marshal(&Deck{})
	a.NoError(err)
	a.Equal("[]", string(b))

	a.Error(json.Unmarshal([]byte(`[{"color":"Red","kind":"Eleven"}]`), &d2))
}
