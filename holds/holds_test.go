package holds

import (
	"slices"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/upperhold/dice"
)

func TestEmptyHand(t *testing.T) {
	is := is.New(t)
	hs := AllHolds(dice.Hand{})
	is.Equal(len(hs), 1)
	is.Equal(len(hs[0]), 0)
}

func TestDistinctFaces(t *testing.T) {
	is := is.New(t)
	for n := 0; n <= 6; n++ {
		hand := make(dice.Hand, n)
		for i := range hand {
			hand[i] = dice.Die(n - i)
		}
		is.Equal(len(AllHolds(hand)), 1<<n)
	}
}

func TestDuplicatesCollapse(t *testing.T) {
	is := is.New(t)
	hand := dice.NewHand(1, 1, 1, 5, 6)
	hs := AllHolds(hand)
	// 4 choices for the ones, 2 each for the five and the six.
	is.Equal(len(hs), 16)
	is.True(len(hs) <= 1<<len(hand))

	is.Equal(len(AllHolds(dice.NewHand(1, 1, 1, 1, 1))), 6)
	is.Equal(len(AllHolds(dice.NewHand(2, 2, 3, 3))), 9)
}

func TestMultiDigitFaces(t *testing.T) {
	is := is.New(t)
	hs := AllHolds(dice.NewHand(12, 1, 12, 258))
	// 3 choices for the twelves, 2 each for the one and the 258.
	is.Equal(len(hs), 12)
	is.Equal(hs[len(hs)-1], dice.NewHand(1, 12, 12, 258))
	is.Equal(hs[1], dice.NewHand(1))
	is.Equal(hs[2], dice.NewHand(12))
	is.Equal(hs[3], dice.NewHand(258))
}

func TestMembersAndOrder(t *testing.T) {
	is := is.New(t)
	hand := dice.NewHand(6, 1, 5, 1, 1)
	hs := AllHolds(hand)

	is.Equal(len(hs[0]), 0)
	is.Equal(hs[len(hs)-1], hand.Canonical())

	seen := map[string]bool{}
	for i, h := range hs {
		is.True(slices.IsSorted(h))
		is.True(hand.Contains(h))
		is.True(!seen[h.String()])
		seen[h.String()] = true
		if i > 0 {
			is.True(dice.Compare(hs[i-1], h) < 0)
		}
	}

	want := []string{"-", "1", "5", "6", "11", "15", "16", "56"}
	for i, w := range want {
		is.Equal(hs[i].String(), w)
	}
}

func TestDeterministic(t *testing.T) {
	is := is.New(t)
	hand := dice.NewHand(3, 1, 3, 6, 2)
	is.Equal(AllHolds(hand), AllHolds(hand))
	is.Equal(AllHolds(hand), AllHolds(hand.Canonical()))
}

func TestComplement(t *testing.T) {
	is := is.New(t)
	hand := dice.NewHand(1, 1, 1, 5, 6)
	is.Equal(Complement(hand, dice.NewHand(1, 1, 1)), dice.NewHand(5, 6))
	is.Equal(Complement(hand, dice.NewHand(6)), dice.NewHand(1, 1, 1, 5))
	is.Equal(Complement(hand, hand), dice.Hand{})
	is.Equal(Complement(hand, dice.Hand{}), hand.Canonical())
	is.Equal(hand, dice.NewHand(1, 1, 1, 5, 6))
}
