package tablestore

import (
	"github.com/sgostarter/libhawking/catalog"
	"github.com/sgostarter/libhawking/grid"
	"github.com/sgostarter/libhawking/hybrid"
)

// Loader reads pre-converted tables. Every failure wraps ErrLoad.
type Loader interface {
	LoadHybrid(spin catalog.SpinClass) (*grid.Grid2D, *hybrid.FitParameters, error)
	LoadYieldTable(regimeID string) (map[catalog.Particle]*grid.Grid2D, error)
}

// Saver writes tables in the form a Loader reads back.
type Saver interface {
	SaveHybrid(spin catalog.SpinClass, g *grid.Grid2D, fit *hybrid.FitParameters) error
	SaveYieldTable(regimeID string, tables map[catalog.Particle]*grid.Grid2D) error
}
