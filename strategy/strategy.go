// Package strategy picks the dice to hold: the hold whose re-roll has the
// highest expected upper-section score.
package strategy

import (
	"context"

	"github.com/domino14/upperhold/dice"
	"github.com/domino14/upperhold/holds"
)

// HoldEquity is one candidate hold and its expected score.
type HoldEquity struct {
	Hold   dice.Hand `json:"hold" yaml:"hold,flow"`
	Reroll dice.Hand `json:"reroll" yaml:"reroll,flow"`
	Equity float64   `json:"equity" yaml:"equity"`
}

// Result is the outcome of a search: the best expected score and the hold
// achieving it.
type Result struct {
	Hand          dice.Hand `json:"hand" yaml:"hand,flow"`
	Sides         int       `json:"sides" yaml:"sides"`
	ExpectedValue float64   `json:"expected_value" yaml:"expected_value"`
	Hold          dice.Hand `json:"hold" yaml:"hold,flow"`
	Reroll        dice.Hand `json:"reroll" yaml:"reroll,flow"`
	// Ranked lists every hold, best first. Only filled in by Rank.
	Ranked []HoldEquity `json:"ranked,omitempty" yaml:"ranked,omitempty"`
}

// Strategy returns the best hold for hand with dice of the given number of
// sides. Holds are tried fewest dice first, then lexicographically, and a
// hold only replaces the current best if its expected value is strictly
// greater, so ties go to the smallest hold. Holding nothing with an
// expected value of 0 is the starting point. sides may be anything from 1
// to dice.MaxSides, the largest face a Die can hold.
func Strategy(hand dice.Hand, sides int) (Result, error) {
	p := NewPlanner()
	p.SetThreads(1)
	return p.Plan(context.Background(), hand, sides)
}

// best applies the search rule to evaluations given in canonical hold
// order.
func best(hand dice.Hand, sides int, evals []HoldEquity) Result {
	res := Result{
		Hand:   hand,
		Sides:  sides,
		Hold:   dice.Hand{},
		Reroll: hand.Canonical(),
	}
	for _, e := range evals {
		if e.Equity > res.ExpectedValue {
			res.ExpectedValue = e.Equity
			res.Hold = e.Hold
			res.Reroll = e.Reroll
		}
	}
	return res
}

func candidates(hand dice.Hand) []HoldEquity {
	hs := holds.AllHolds(hand)
	evals := make([]HoldEquity, len(hs))
	for i, h := range hs {
		evals[i] = HoldEquity{Hold: h, Reroll: holds.Complement(hand, h)}
	}
	return evals
}
