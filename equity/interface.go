package equity

import "github.com/domino14/upperhold/dice"

// Calculator computes the equity of holding some dice: the expected
// upper-section score once the free dice are re-rolled.
type Calculator interface {
	Equity(held dice.Hand, sides, free int) (float64, error)
}
