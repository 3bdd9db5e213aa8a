// Package scoring scores a hand against the upper section of a Yahtzee
// score card.
package scoring

import (
	"github.com/samber/lo"

	"github.com/domino14/upperhold/dice"
)

// Upper returns the best upper-section score for the hand: the maximum over
// the faces present of face * count. An empty hand scores 0.
func Upper(hand dice.Hand) int {
	score, _ := UpperBy(hand)
	return score
}

// UpperBy is Upper, but also returns the face that earns the score. When
// two faces tie the higher one is reported. The face is 0 for an empty hand.
func UpperBy(hand dice.Hand) (int, dice.Die) {
	best, face := 0, dice.Die(0)
	for d, n := range lo.CountValues(hand) {
		s := int(d) * n
		if s > best || (s == best && d > face) {
			best, face = s, d
		}
	}
	return best, face
}
