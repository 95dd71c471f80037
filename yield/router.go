package yield

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Span is the part of an integration range that falls into one regime.
type Span struct {
	Regime int
	Lo     float64
	Hi     float64
}

// Router picks the regime table owning an emitter energy. Immutable once built, so
// one instance can serve any number of concurrent integrations.
type Router[K cmp.Ordered] struct {
	tables     []*Table[K]
	boundaries Boundaries
}

func NewRouter[K cmp.Ordered](tables []*Table[K], boundaries Boundaries) (*Router[K], error) {
	if len(tables) != boundaries.Regimes() {
		return nil, fmt.Errorf("%w: %d tables, %d regimes", ErrRegimeCount, len(tables), boundaries.Regimes())
	}

	return &Router[K]{
		tables:     append([]*Table[K](nil), tables...),
		boundaries: boundaries,
	}, nil
}

func (r *Router[K]) Boundaries() Boundaries {
	return r.boundaries
}

func (r *Router[K]) Table(regime int) *Table[K] {
	if regime < 0 || regime >= len(r.tables) {
		return nil
	}

	return r.tables[regime]
}

func (r *Router[K]) RegimeIndex(eIn float64) int {
	return r.boundaries.Index(eIn)
}

func (r *Router[K]) Query(k K, eIn, eOut float64) float64 {
	return r.tables[r.RegimeIndex(eIn)].Query(k, eIn, eOut)
}

// QueryRegime skips the regime lookup for callers that already split their range
// with RegimesOverlapping.
func (r *Router[K]) QueryRegime(regime int, k K, eIn, eOut float64) float64 {
	return r.Table(regime).Query(k, eIn, eOut)
}

// RegimesOverlapping splits [lo, hi] ∩ [0, +Inf) into consecutive per-regime spans,
// ascending, sharing only their end points. Empty when nothing is left.
func (r *Router[K]) RegimesOverlapping(lo, hi float64) (spans []Span) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return
	}

	lo = math.Max(lo, 0)
	if hi <= lo {
		return
	}

	for k := r.boundaries.Index(lo); ; k++ {
		upper := math.Min(hi, r.boundaries.Upper(k))

		spans = append(spans, Span{Regime: k, Lo: lo, Hi: upper})

		if upper >= hi {
			break
		}

		lo = upper
	}

	return
}

// Categories is the sorted union of categories with data in any regime.
func (r *Router[K]) Categories() []K {
	seen := make(map[K]struct{})

	var ks []K

	for _, t := range r.tables {
		for _, k := range t.Categories() {
			if _, ok := seen[k]; ok {
				continue
			}

			seen[k] = struct{}{}

			ks = append(ks, k)
		}
	}

	slices.Sort(ks)

	return ks
}

// Has reports whether any regime holds data for k.
func (r *Router[K]) Has(k K) bool {
	for _, t := range r.tables {
		if t.Has(k) {
			return true
		}
	}

	return false
}
