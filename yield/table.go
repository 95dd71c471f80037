package yield

import (
	"cmp"
	"slices"

	"github.com/sgostarter/libhawking/grid"
)

// Table is the yield data of one regime: per category, a grid with emitter energy
// on the rows and observed energy on the columns.
type Table[K cmp.Ordered] struct {
	grids map[K]*grid.Grid2D
}

func NewTable[K cmp.Ordered](grids map[K]*grid.Grid2D) *Table[K] {
	t := &Table[K]{
		grids: make(map[K]*grid.Grid2D, len(grids)),
	}

	for k, g := range grids {
		if g == nil {
			continue
		}

		t.grids[k] = g
	}

	return t
}

func (t *Table[K]) Has(k K) bool {
	if t == nil {
		return false
	}

	_, ok := t.grids[k]

	return ok
}

// Query returns the yield density of k at (eIn, eOut). A category this regime does
// not produce, or a point outside its tabulated rectangle, yields 0.
func (t *Table[K]) Query(k K, eIn, eOut float64) float64 {
	if t == nil {
		return 0
	}

	g, ok := t.grids[k]
	if !ok || !g.Covers(eIn, eOut) {
		return 0
	}

	v, _ := g.Interpolate(eIn, eOut)

	return v
}

func (t *Table[K]) Grid(k K) (*grid.Grid2D, bool) {
	if t == nil {
		return nil, false
	}

	g, ok := t.grids[k]

	return g, ok
}

// Categories is sorted ascending.
func (t *Table[K]) Categories() []K {
	if t == nil {
		return nil
	}

	ks := make([]K, 0, len(t.grids))
	for k := range t.grids {
		ks = append(ks, k)
	}

	slices.Sort(ks)

	return ks
}
