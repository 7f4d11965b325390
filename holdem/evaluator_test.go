package holdem

import (
	"testing"

	"sixseat/card"
)

func c(rank, suit int) card.Card { return card.New(rank, suit) }

func TestEval5_RoyalFlushBeatsLowerStraightFlush(t *testing.T) {
	royal := eval5([5]card.Card{c(12, card.Spade), c(11, card.Spade), c(10, card.Spade), c(9, card.Spade), c(8, card.Spade)})
	if Category(royal) != CategoryStraightFlush {
		t.Fatalf("expected straight flush category, got %d", Category(royal))
	}
	lower := eval5([5]card.Card{c(11, card.Heart), c(10, card.Heart), c(9, card.Heart), c(8, card.Heart), c(7, card.Heart)})
	if royal <= lower {
		t.Fatalf("royal flush must beat king-high straight flush: %d <= %d", royal, lower)
	}
}

func TestEval5_WheelStraightIsLowestStraight(t *testing.T) {
	wheel := eval5([5]card.Card{c(12, card.Spade), c(0, card.Heart), c(1, card.Club), c(2, card.Diamond), c(3, card.Spade)})
	if Category(wheel) != CategoryStraight {
		t.Fatalf("expected straight for wheel, got %d", Category(wheel))
	}
	sixHigh := eval5([5]card.Card{c(0, card.Spade), c(1, card.Heart), c(2, card.Club), c(3, card.Diamond), c(4, card.Spade)})
	if sixHigh <= wheel {
		t.Fatalf("6-high straight must beat the wheel: %d <= %d", sixHigh, wheel)
	}
}

func TestEval7_PicksBestFive(t *testing.T) {
	hand := []card.Card{
		c(12, card.Spade), c(12, card.Heart), // pair of aces
		c(11, card.Club), c(11, card.Diamond), // pair of kings
		c(0, card.Spade), c(1, card.Heart), c(2, card.Club),
	}
	got := Eval(hand)
	if Category(got) != CategoryTwoPair {
		t.Fatalf("expected two pair, got category %d", Category(got))
	}
}

// S5 from the scenario catalogue: board A-K-Q-J-spade plus a diamond
// ten; seat A holds T-spade/2-club (royal flush), seat B holds pocket
// aces (three aces, whose best five is the ace-high straight on the
// board). The royal flush must win.
func TestEval7_RoyalFlushBeatsAceHighStraight(t *testing.T) {
	board := []card.Card{c(12, card.Spade), c(11, card.Spade), c(10, card.Spade), c(9, card.Spade), c(8, card.Diamond)}
	seatA := append(append([]card.Card{}, board...), c(8, card.Spade), c(0, card.Club))
	seatB := append(append([]card.Card{}, board...), c(12, card.Heart), c(12, card.Diamond))

	scoreA := Eval(seatA)
	scoreB := Eval(seatB)
	if Category(scoreA) != CategoryStraightFlush {
		t.Fatalf("expected seat A straight flush (royal), got category %d", Category(scoreA))
	}
	if Category(scoreB) != CategoryStraight {
		t.Fatalf("expected seat B ace-high straight, got category %d", Category(scoreB))
	}
	if scoreA <= scoreB {
		t.Fatalf("royal flush must beat the ace-high straight: %d <= %d", scoreA, scoreB)
	}
}

// P8: every royal flush (T-J-Q-K-A of one suit) scores identically
// regardless of suit.
func TestEval5_RoyalFlushInvariantAcrossSuits(t *testing.T) {
	var scores []Score
	for s := 0; s < card.NumSuits; s++ {
		scores = append(scores, eval5([5]card.Card{c(12, s), c(11, s), c(10, s), c(9, s), c(8, s)}))
	}
	for i := 1; i < len(scores); i++ {
		if scores[i] != scores[0] {
			t.Fatalf("royal flushes must tie across suits: %d != %d", scores[i], scores[0])
		}
	}
}

// P7 sample: scores a prefix of the 5-card hands in enumeration order
// (every hand holding 2d together with 2c or 2h, 38,024 hands; the full
// 52-choose-5 is too large for a unit test) and checks that no score is
// negative, i.e. no tie-breaker packing spills into the category bits.
// Every sampled hand holds a pair of twos, so high card, straight,
// flush and straight flush are not reached here.
func TestEval5_TotalOrderSample(t *testing.T) {
	var all []card.Card
	for r := 0; r < card.NumRanks; r++ {
		for s := 0; s < card.NumSuits; s++ {
			all = append(all, c(r, s))
		}
	}
	var scored []Score
	n := len(all)
outer:
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for d := b + 1; d < n-2; d++ {
				for e := d + 1; e < n-1; e++ {
					for f := e + 1; f < n; f++ {
						scored = append(scored, eval5([5]card.Card{all[a], all[b], all[d], all[e], all[f]}))
					}
				}
			}
			if len(scored) > 20000 {
				break outer
			}
		}
	}
	for _, s := range scored {
		if s < 0 {
			t.Fatalf("negative score produced: %d", s)
		}
	}
}
