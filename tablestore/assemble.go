package tablestore

import (
	"fmt"

	"github.com/sgostarter/libhawking/catalog"
	"github.com/sgostarter/libhawking/hybrid"
	"github.com/sgostarter/libhawking/yield"
)

// LoadGreybody loads one hybrid table per spin class.
func LoadGreybody(loader Loader, spins []catalog.SpinClass) (*hybrid.GridFit[catalog.SpinClass], error) {
	tables := make(map[catalog.SpinClass]hybrid.Table, len(spins))

	for _, spin := range spins {
		g, fit, err := loader.LoadHybrid(spin)
		if err != nil {
			return nil, err
		}

		tables[spin] = hybrid.Table{Grid: g, Fit: fit}
	}

	return hybrid.NewGridFit(tables)
}

// LoadRouter loads the regime tables named by regimeIDs, lowest energy first, and
// joins them with thresholds.
func LoadRouter(loader Loader, regimeIDs []string, thresholds []float64) (*yield.Router[catalog.Particle], error) {
	boundaries, err := yield.NewBoundaries(thresholds)
	if err != nil {
		return nil, err
	}

	if len(regimeIDs) != boundaries.Regimes() {
		return nil, fmt.Errorf("%w: %d regime ids, %d thresholds", yield.ErrRegimeCount, len(regimeIDs), len(thresholds))
	}

	tables := make([]*yield.Table[catalog.Particle], 0, len(regimeIDs))

	for _, id := range regimeIDs {
		grids, e := loader.LoadYieldTable(id)
		if e != nil {
			return nil, e
		}

		tables = append(tables, yield.NewTable(grids))
	}

	return yield.NewRouter(tables, boundaries)
}
