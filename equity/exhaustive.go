// Package equity computes the expected score of a hold by averaging over
// every possible re-roll of the free dice.
package equity

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/upperhold/dice"
	"github.com/domino14/upperhold/scoring"
	"github.com/domino14/upperhold/sequence"
	"github.com/domino14/upperhold/stats"
)

// ExpectedValue returns the mean upper-section score of held plus every
// sequence of free dice with the given number of sides. With no free dice
// this is exactly the score of held.
func ExpectedValue(held dice.Hand, sides, free int) (float64, error) {
	rolls, err := rollsFor(sides, free)
	if err != nil {
		return 0, err
	}
	total := lo.SumBy(rolls, func(roll dice.Hand) int {
		return scoring.Upper(held.Concat(roll))
	})
	return float64(total) / float64(len(rolls)), nil
}

func rollsFor(sides, free int) ([]dice.Hand, error) {
	if free < 0 {
		return nil, fmt.Errorf("%w: negative free dice count %d", dice.ErrInvalidInput, free)
	}
	rolls, err := sequence.Rolls(sides, free)
	if err != nil {
		return nil, err
	}
	// Faces(sides) is never empty once validated, so neither is rolls.
	return rolls, nil
}

// Exhaustive is a Calculator that enumerates every roll.
type Exhaustive struct{}

func (Exhaustive) Equity(held dice.Hand, sides, free int) (float64, error) {
	return ExpectedValue(held, sides, free)
}

// ScoreCount is how many roll sequences end on a given score.
type ScoreCount struct {
	Score int `json:"score" yaml:"score"`
	Count int `json:"count" yaml:"count"`
}

// Distribution is the full score distribution of a hold.
type Distribution struct {
	Held   dice.Hand    `json:"held" yaml:"held"`
	Free   int          `json:"free" yaml:"free"`
	Rolls  int          `json:"rolls" yaml:"rolls"`
	Mean   float64      `json:"mean" yaml:"mean"`
	Stdev  float64      `json:"stdev" yaml:"stdev"`
	Min    int          `json:"min" yaml:"min"`
	Max    int          `json:"max" yaml:"max"`
	Scores []ScoreCount `json:"scores" yaml:"scores,flow"`

	// Samples holds one score per roll, in enumeration order.
	Samples []float64 `json:"-" yaml:"-"`
}

// ScoreDistribution enumerates the same rolls as ExpectedValue and keeps
// every resulting score. Mean is computed exactly from the integer total so
// it matches ExpectedValue bit for bit.
func ScoreDistribution(held dice.Hand, sides, free int) (*Distribution, error) {
	rolls, err := rollsFor(sides, free)
	if err != nil {
		return nil, err
	}
	d := &Distribution{
		Held:    held.Canonical(),
		Free:    free,
		Rolls:   len(rolls),
		Samples: make([]float64, 0, len(rolls)),
	}
	st := &stats.Statistic{}
	counts := map[int]int{}
	total := 0
	for _, roll := range rolls {
		s := scoring.Upper(held.Concat(roll))
		total += s
		counts[s]++
		st.Push(float64(s))
		d.Samples = append(d.Samples, float64(s))
	}
	d.Mean = float64(total) / float64(len(rolls))
	d.Stdev = st.Stdev()
	d.Min = int(st.Min())
	d.Max = int(st.Max())
	keys := lo.Keys(counts)
	slices.Sort(keys)
	d.Scores = lo.Map(keys, func(k int, _ int) ScoreCount {
		return ScoreCount{Score: k, Count: counts[k]}
	})
	log.Debug().Str("held", held.String()).Int("free", free).Int("rolls", d.Rolls).
		Float64("mean", d.Mean).Float64("stdev", d.Stdev).Msg("score-distribution")
	return d, nil
}
