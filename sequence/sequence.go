// Package sequence enumerates every ordered outcome of rolling a number of
// dice. Order matters: (1,2) and (2,1) are distinct sequences, which is what
// makes a plain average over the result a probability-weighted one.
package sequence

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/domino14/upperhold/dice"
)

// AllSequences returns all sequences of the given length drawn from
// outcomes, with repetition. It grows the set breadth-first: starting from
// the single empty sequence, every sequence is extended by each outcome,
// length times over. The result is ordered lexicographically by the order
// of outcomes. Repeated outcomes are collapsed first so the result is a set.
func AllSequences(outcomes dice.Hand, length int) ([]dice.Hand, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative sequence length %d", dice.ErrInvalidInput, length)
	}
	alphabet := lo.Uniq(outcomes)
	if _, err := Count(len(alphabet), length); err != nil {
		return nil, err
	}

	answer := []dice.Hand{{}}
	for range length {
		next := make([]dice.Hand, 0, len(answer)*len(alphabet))
		for _, partial := range answer {
			for _, o := range alphabet {
				seq := make(dice.Hand, len(partial), len(partial)+1)
				copy(seq, partial)
				next = append(next, append(seq, o))
			}
		}
		answer = next
	}
	return answer, nil
}

// Count returns numOutcomes^length, the number of sequences AllSequences
// would build, without building them.
func Count(numOutcomes, length int) (int, error) {
	if numOutcomes < 0 || length < 0 {
		return 0, fmt.Errorf("%w: negative outcome count or length (%d, %d)",
			dice.ErrInvalidInput, numOutcomes, length)
	}
	n := 1
	for range length {
		if numOutcomes != 0 && n > math.MaxInt/numOutcomes {
			return 0, fmt.Errorf("%w: %d^%d sequences overflows", dice.ErrInvalidInput,
				numOutcomes, length)
		}
		n *= numOutcomes
	}
	return n, nil
}

// Rolls enumerates every outcome of rolling free dice with the given number
// of sides.
func Rolls(sides, free int) ([]dice.Hand, error) {
	faces, err := dice.Faces(sides)
	if err != nil {
		return nil, err
	}
	return AllSequences(faces, free)
}
