package ratecache

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// Curve holds the sampled rates of one category and the monotone cubic fitted
// through them. Read-only after Build.
type Curve struct {
	Energies []float64
	Rates    []float64

	predictor interp.FritschButland
}

func newCurve(energies, rates []float64) (*Curve, error) {
	c := &Curve{
		Energies: energies,
		Rates:    rates,
	}

	if err := c.predictor.Fit(energies, rates); err != nil {
		return nil, err
	}

	return c, nil
}

// Predict evaluates the interpolant, holding the edge values outside the sampled
// range. Overshoot below zero is clipped.
func (c *Curve) Predict(e float64) float64 {
	v := c.predictor.Predict(e)
	if v < 0 || math.IsNaN(v) {
		return 0
	}

	return v
}
