package ratecache

import (
	"fmt"
	"math"

	"github.com/sgostarter/libhawking/grid"
)

// Cache is the rate table of one source instance. It is frozen once Build returns
// and may be queried from any number of goroutines.
type Cache[K comparable] struct {
	attrs  Attributes[K]
	curves map[K]*Curve
}

// Build samples fn for every category at every energy of the axis and fits a curve
// per category.
func Build[K comparable](categories []K, fn EmissionFunc[K], energies grid.Axis, attrs Attributes[K]) (*Cache[K], error) {
	if fn == nil {
		return nil, ErrNoEmission
	}

	if energies.Len() < 2 {
		return nil, grid.ErrInsufficientGrid
	}

	points := energies.Points()

	c := &Cache[K]{
		attrs:  attrs,
		curves: make(map[K]*Curve, len(categories)),
	}

	for _, k := range categories {
		if _, ok := c.curves[k]; ok {
			continue
		}

		rates := make([]float64, len(points))

		for idx, e := range points {
			r, err := fn(k, e)
			if err != nil {
				return nil, fmt.Errorf("%v at %v: %w", k, e, err)
			}

			if math.IsNaN(r) || math.IsInf(r, 0) {
				return nil, fmt.Errorf("%w: %v at %v", ErrBadRate, k, e)
			}

			rates[idx] = r
		}

		curve, err := newCurve(points, rates)
		if err != nil {
			return nil, fmt.Errorf("fit %v: %w", k, err)
		}

		c.curves[k] = curve
	}

	return c, nil
}

func (c *Cache[K]) Has(k K) bool {
	_, ok := c.curves[k]

	return ok
}

// Query returns the non-negative rate of k at e, and 0 below its rest energy.
func (c *Cache[K]) Query(k K, e float64) (float64, error) {
	curve, ok := c.curves[k]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownCategory, k)
	}

	if c.attrs != nil && e < c.attrs.RestEnergy(k) {
		return 0, nil
	}

	return curve.Predict(e), nil
}

func (c *Cache[K]) Curve(k K) (*Curve, bool) {
	curve, ok := c.curves[k]

	return curve, ok
}

func (c *Cache[K]) Categories() []K {
	ks := make([]K, 0, len(c.curves))
	for k := range c.curves {
		ks = append(ks, k)
	}

	return ks
}
