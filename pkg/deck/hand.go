package deck

// Hand represents a collection of cards
type Hand []Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// Remove removes the first card matching card
// Returns false if the hand does not hold the card
func (h *Hand) Remove(card Card) bool {
	for i, c := range *h {
		if c == card {
			*h = append((*h)[:i:i], (*h)[i+1:]...)
			return true
		}
	}

	return false
}

// Count returns the number of cards of the kind in the hand
func (h Hand) Count(kind Kind) int {
	n := 0
	for _, c := range h {
		if c.Kind == kind {
			n++
		}
	}

	return n
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
