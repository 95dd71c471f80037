package emission

import (
	"fmt"
	"math"

	"github.com/sgostarter/libhawking/catalog"
	"github.com/sgostarter/libhawking/hybrid"
	"github.com/sgostarter/libhawking/ratecache"
)

// NewFunc returns the primary emission rate d2N/dtdE, in 1/(GeV s), of every species
// for the given hole:
//
//	g * Gamma_s(a, E/T) / (2 pi hbar) / (exp(E/T) - eta)
//
// with eta = +1 for bosons and -1 for fermions.
func NewFunc(greybody *hybrid.GridFit[catalog.SpinClass], cat *catalog.Catalog,
	bh BlackHole) (ratecache.EmissionFunc[catalog.Particle], error) {
	if greybody == nil {
		return nil, ErrNoGreybody
	}

	if err := bh.Validate(); err != nil {
		return nil, err
	}

	temperature := bh.Temperature()

	return func(p catalog.Particle, e float64) (float64, error) {
		info, err := cat.Info(p)
		if err != nil {
			return 0, fmt.Errorf("%v: %w", p, err)
		}

		x := e / temperature
		if x <= 0 {
			return 0, nil
		}

		gamma, err := greybody.Query(info.Spin, bh.Spin, x)
		if err != nil {
			return 0, fmt.Errorf("%v: %w", p, err)
		}

		if gamma <= 0 {
			return 0, nil
		}

		return info.Multiplicity * gamma / (2 * math.Pi * HBar) / statistics(x, info.Spin.Fermion()), nil
	}, nil
}

func statistics(x float64, fermion bool) float64 {
	if fermion {
		return math.Exp(x) + 1
	}

	return math.Expm1(x)
}
