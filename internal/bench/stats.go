package bench

import (
	"math"
	"slices"

	"github.com/lox/ddz/ddz"
)

// Summary accumulates one sample per round.
type Summary struct {
	N      int
	Sum    float64
	SumSq  float64 // for variance
	Values []float64
}

// Add records a sample.
func (s *Summary) Add(x float64) {
	s.N++
	s.Sum += x
	s.SumSq += x * x
	s.Values = append(s.Values, x)
}

// Mean returns the arithmetic mean.
func (s *Summary) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance.
func (s *Summary) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSq - float64(s.N)*mean*mean) / float64(s.N-1)
}

// StdDev returns the sample standard deviation.
func (s *Summary) StdDev() float64 {
	return math.Sqrt(max(s.Variance(), 0))
}

// Median returns the median sample.
func (s *Summary) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := slices.Clone(s.Values)
	slices.Sort(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Max returns the largest sample.
func (s *Summary) Max() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return slices.Max(s.Values)
}

// ShapeCounts tallies candidates by shape.
type ShapeCounts map[string]int

// Add classifies every candidate and counts it.
func (c ShapeCounts) Add(cands [][]ddz.Card) {
	for _, cand := range cands {
		c[ddz.Classify(cand).String()]++
	}
}
