package card

import "math/rand"

// Deck is the 52-card shoe plus a cursor pointing at the next undealt
// card. The initial order, before any shuffle, is rank-major suit-minor
// (matches the construction order a given seed must reproduce).
type Deck struct {
	cards [NumCards]Card
	next  int
}

// NewDeck builds an unshuffled deck in rank-major, suit-minor order.
func NewDeck() *Deck {
	d := &Deck{}
	i := 0
	for r := 0; r < NumRanks; r++ {
		for s := 0; s < NumSuits; s++ {
			d.cards[i] = New(r, s)
			i++
		}
	}
	return d
}

// NewDeckFromCards builds a deck with a pinned draw order, for
// deterministic test fixtures and forced-board replays. order must
// contain exactly NumCards cards.
func NewDeckFromCards(order []Card) *Deck {
	if len(order) != NumCards {
		panic("card: NewDeckFromCards requires exactly 52 cards")
	}
	d := &Deck{}
	copy(d.cards[:], order)
	return d
}

// Shuffle applies Fisher-Yates over the whole 52-card array using rng,
// then resets the cursor to the top.
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := NumCards - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	d.next = 0
}

// Draw returns the next undealt card, panicking on underflow: the
// 6-seat / 5-community-card draw pattern never exhausts 52 cards, so
// hitting this means a bug upstream.
func (d *Deck) Draw() Card {
	if d.next >= NumCards {
		panic("card: deck underflow")
	}
	c := d.cards[d.next]
	d.next++
	return c
}

// Remaining reports how many cards are still undealt.
func (d *Deck) Remaining() int {
	return NumCards - d.next
}
