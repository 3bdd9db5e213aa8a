package sequence

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/domino14/upperhold/dice"
)

func TestZeroLength(t *testing.T) {
	is := is.New(t)
	seqs, err := AllSequences(dice.NewHand(1, 2, 3), 0)
	is.NoErr(err)
	is.Equal(len(seqs), 1)
	is.Equal(len(seqs[0]), 0)

	seqs, err = AllSequences(dice.Hand{}, 0)
	is.NoErr(err)
	is.Equal(len(seqs), 1)
}

func TestEmptyAlphabet(t *testing.T) {
	is := is.New(t)
	seqs, err := AllSequences(dice.Hand{}, 3)
	is.NoErr(err)
	is.Equal(len(seqs), 0)
}

func TestNegativeLength(t *testing.T) {
	is := is.New(t)
	_, err := AllSequences(dice.NewHand(1, 2), -1)
	is.True(errors.Is(err, dice.ErrInvalidInput))
}

func TestSizes(t *testing.T) {
	is := is.New(t)
	for sides := 1; sides <= 6; sides++ {
		for length := 0; length <= 4; length++ {
			seqs, err := Rolls(sides, length)
			is.NoErr(err)
			want, err := Count(sides, length)
			is.NoErr(err)
			is.Equal(len(seqs), want)
			seen := map[string]bool{}
			for _, s := range seqs {
				is.Equal(len(s), length)
				is.True(!seen[s.String()])
				seen[s.String()] = true
			}
		}
	}
}

func TestDuplicateOutcomesCollapse(t *testing.T) {
	is := is.New(t)
	seqs, err := AllSequences(dice.NewHand(1, 1, 2), 2)
	is.NoErr(err)
	is.Equal(len(seqs), 4)
}

// The enumeration should agree, in order, with gonum's cartesian product.
func TestMatchesCartesian(t *testing.T) {
	is := is.New(t)
	faces := dice.NewHand(1, 2, 3, 4, 5, 6)
	for length := 1; length <= 3; length++ {
		lens := make([]int, length)
		for i := range lens {
			lens[i] = len(faces)
		}
		product := combin.Cartesian(lens)
		seqs, err := AllSequences(faces, length)
		is.NoErr(err)
		is.Equal(len(seqs), len(product))
		for i, idxs := range product {
			for j, idx := range idxs {
				is.Equal(seqs[i][j], faces[idx])
			}
		}
	}
}

func TestCountOverflow(t *testing.T) {
	is := is.New(t)
	_, err := Count(255, 100)
	is.True(errors.Is(err, dice.ErrInvalidInput))
	n, err := Count(0, 0)
	is.NoErr(err)
	is.Equal(n, 1)
}
