// Package stats keeps running summaries of score distributions.
package stats

import "math"

// Statistic accumulates a stream of scores. The variance uses Welford's
// running mean; callers that need an exact mean of integer scores should
// sum them directly.
type Statistic struct {
	n   int
	min float64
	max float64

	oldM float64
	newM float64
	oldS float64
	newS float64
}

func (s *Statistic) Push(val float64) {
	s.n++
	if s.n == 1 {
		s.oldM, s.newM = val, val
		s.oldS = 0
		s.min, s.max = val, val
		return
	}
	s.newM = s.oldM + (val-s.oldM)/float64(s.n)
	s.newS = s.oldS + (val-s.oldM)*(val-s.newM)
	s.oldM = s.newM
	s.oldS = s.newS
	s.min = min(s.min, val)
	s.max = max(s.max, val)
}

// Variance is the population variance. Every outcome of a roll is
// enumerated, so this is not a sample.
func (s *Statistic) Variance() float64 {
	if s.n <= 1 {
		return 0.0
	}
	return s.newS / float64(s.n)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistic) Min() float64 { return s.min }
func (s *Statistic) Max() float64 { return s.max }

func (s *Statistic) Iterations() int {
	return s.n
}
