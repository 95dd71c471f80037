package yield

import (
	"fmt"
	"math"
	"sort"
)

// Boundaries split [0, +Inf) into len(thresholds)+1 half-open regimes
// [b[k-1], b[k]), the first starting at 0 and the last open-ended.
type Boundaries struct {
	thresholds []float64
}

func NewBoundaries(thresholds []float64) (Boundaries, error) {
	for idx, b := range thresholds {
		if math.IsNaN(b) || math.IsInf(b, 0) || b <= 0 {
			return Boundaries{}, fmt.Errorf("%w: threshold %d is %v", ErrInvalidBoundaries, idx, b)
		}

		if idx > 0 && b <= thresholds[idx-1] {
			return Boundaries{}, fmt.Errorf("%w: threshold %d (%v) not above %v", ErrInvalidBoundaries,
				idx, b, thresholds[idx-1])
		}
	}

	return Boundaries{
		thresholds: append([]float64(nil), thresholds...),
	}, nil
}

func (b Boundaries) Regimes() int {
	return len(b.thresholds) + 1
}

func (b Boundaries) Thresholds() []float64 {
	return append([]float64(nil), b.thresholds...)
}

// Index returns k with b[k-1] <= e < b[k]. Negative energies fall into regime 0.
func (b Boundaries) Index(e float64) int {
	return sort.Search(len(b.thresholds), func(i int) bool {
		return b.thresholds[i] > e
	})
}

func (b Boundaries) Lower(k int) float64 {
	if k <= 0 {
		return 0
	}

	return b.thresholds[k-1]
}

func (b Boundaries) Upper(k int) float64 {
	if k >= len(b.thresholds) {
		return math.Inf(1)
	}

	return b.thresholds[k]
}
