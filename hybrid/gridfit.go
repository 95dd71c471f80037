package hybrid

import (
	"fmt"
	"math"

	"github.com/sgostarter/i/commerr"
)

// GridFit answers f(a, x) per category from a tabulated grid where x is covered
// and from analytic fits elsewhere. It is read-only after construction and safe for
// concurrent use.
type GridFit[K comparable] struct {
	tables map[K]Table
}

func NewGridFit[K comparable](tables map[K]Table) (*GridFit[K], error) {
	gf := &GridFit[K]{
		tables: make(map[K]Table, len(tables)),
	}

	for k, t := range tables {
		if t.Grid == nil || t.Fit == nil {
			return nil, fmt.Errorf("%w: %v has no grid or fit", ErrBadFitShape, k)
		}

		gf.tables[k] = t
	}

	return gf, nil
}

func (gf *GridFit[K]) Has(k K) bool {
	_, ok := gf.tables[k]

	return ok
}

// Query evaluates category k at secondary value a and energy-like x >= 0.
// a is clamped into the covered range of each path.
func (gf *GridFit[K]) Query(k K, a, x float64) (float64, error) {
	t, ok := gf.tables[k]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownCategory, k)
	}

	if x < 0 || math.IsNaN(x) {
		return 0, fmt.Errorf("%w: x = %v", commerr.ErrInvalidArgument, x)
	}

	return evaluate(t, a, x), nil
}

func evaluate(t Table, a, x float64) float64 {
	switch {
	case x < t.Grid.Cols.Min():
		return LowFormula(t.Fit.coefficientsAt(t.Fit.Low, t.Fit.Axis.Clamp(a)), x)
	case x > t.Grid.Cols.Max():
		return HighFormula(t.Fit.coefficientsAt(t.Fit.High, t.Fit.Axis.Clamp(a)), x)
	}

	v, _ := t.Grid.Interpolate(t.Grid.Rows.Clamp(a), x)

	return v
}

// Categories lists the keys with loaded data in no particular order.
func (gf *GridFit[K]) Categories() []K {
	ks := make([]K, 0, len(gf.tables))
	for k := range gf.tables {
		ks = append(ks, k)
	}

	return ks
}
