package holdem

import (
	"fmt"

	"sixseat/card"
)

// Config parameterizes a Table. There are no blinds, antes, or buy-in
// tiers: every seat starts at StartingStack and chips never re-enter
// play from outside the table.
type Config struct {
	StartingStack int64

	// Seed drives the deck's PRNG. Two tables built with the same seed
	// and fed the same action sequence produce identical deals.
	Seed int64

	// DeckOverride pins the full 52-card draw order, consumed from index
	// 0 upward, bypassing the shuffle. Used by tests that need a forced
	// board.
	DeckOverride []card.Card
}

func (c Config) validate() error {
	if c.StartingStack <= 0 {
		return fmt.Errorf("holdem: StartingStack must be > 0")
	}
	if len(c.DeckOverride) != 0 && len(c.DeckOverride) != 52 {
		return fmt.Errorf("holdem: DeckOverride must contain 52 cards, got %d", len(c.DeckOverride))
	}
	return nil
}
