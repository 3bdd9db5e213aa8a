// Package holds enumerates the distinct choices of dice a player can keep
// from a hand.
package holds

import (
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/domino14/upperhold/dice"
)

// holdSet is a hash set of canonical holds. Buckets are keyed by the
// xxhash of the sorted faces and compared exactly on insert.
type holdSet struct {
	buckets map[uint64][]dice.Hand
	ordered []dice.Hand
}

func newHoldSet() *holdSet {
	return &holdSet{buckets: make(map[uint64][]dice.Hand)}
}

func key(canonical dice.Hand) uint64 {
	b := make([]byte, 0, 2*len(canonical))
	for _, d := range canonical {
		b = binary.LittleEndian.AppendUint16(b, uint16(d))
	}
	return xxhash.Sum64(b)
}

// add inserts a canonical hold, returning false if it was already present.
func (s *holdSet) add(canonical dice.Hand) bool {
	k := key(canonical)
	for _, h := range s.buckets[k] {
		if slices.Equal(h, canonical) {
			return false
		}
	}
	s.buckets[k] = append(s.buckets[k], canonical)
	s.ordered = append(s.ordered, canonical)
	return true
}

// AllHolds returns every distinct sub-multiset of hand, each sorted, in
// canonical order: fewer dice first, then lexicographically. The empty hold
// and the whole hand are always included. A hand of n distinct faces yields
// 2^n holds; repeated faces collapse to fewer.
func AllHolds(hand dice.Hand) []dice.Hand {
	set := newHoldSet()
	set.add(dice.Hand{})
	for k := 1; k <= len(hand); k++ {
		for _, idxs := range combin.Combinations(len(hand), k) {
			h := make(dice.Hand, k)
			for i, idx := range idxs {
				h[i] = hand[idx]
			}
			slices.Sort(h)
			set.add(h)
		}
	}
	slices.SortStableFunc(set.ordered, dice.Compare)
	return set.ordered
}

// Complement returns the dice of hand left over once hold is set aside,
// in canonical order. hold must be a sub-multiset of hand.
func Complement(hand, hold dice.Hand) dice.Hand {
	left := hand.Canonical()
	for _, d := range hold {
		if i := slices.Index(left, d); i >= 0 {
			left = slices.Delete(left, i, i+1)
		}
	}
	return left
}
