package tablestore

import (
	"fmt"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libhawking/catalog"
	"github.com/sgostarter/libhawking/grid"
	"github.com/sgostarter/libhawking/hybrid"
)

// MemLoader keeps tables in memory, for tests and for callers that build tables
// themselves.
type MemLoader struct {
	lock    sync.RWMutex
	hybrids map[catalog.SpinClass]hybrid.Table
	yields  map[string]map[catalog.Particle]*grid.Grid2D
}

func NewMemLoader() *MemLoader {
	return &MemLoader{
		hybrids: make(map[catalog.SpinClass]hybrid.Table),
		yields:  make(map[string]map[catalog.Particle]*grid.Grid2D),
	}
}

func (impl *MemLoader) SaveHybrid(spin catalog.SpinClass, g *grid.Grid2D, fit *hybrid.FitParameters) error {
	if g == nil || fit == nil {
		return commerr.ErrInvalidArgument
	}

	impl.lock.Lock()
	defer impl.lock.Unlock()

	impl.hybrids[spin] = hybrid.Table{Grid: g, Fit: fit}

	return nil
}

func (impl *MemLoader) SaveYieldTable(regimeID string, tables map[catalog.Particle]*grid.Grid2D) error {
	m := make(map[catalog.Particle]*grid.Grid2D, len(tables))
	for p, g := range tables {
		m[p] = g
	}

	impl.lock.Lock()
	defer impl.lock.Unlock()

	impl.yields[regimeID] = m

	return nil
}

func (impl *MemLoader) LoadHybrid(spin catalog.SpinClass) (*grid.Grid2D, *hybrid.FitParameters, error) {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	t, ok := impl.hybrids[spin]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrLoad, hybridFileName(spin), commerr.ErrNotFound)
	}

	return t.Grid, t.Fit, nil
}

func (impl *MemLoader) LoadYieldTable(regimeID string) (map[catalog.Particle]*grid.Grid2D, error) {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	m, ok := impl.yields[regimeID]
	if !ok {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, yieldFileName(regimeID), commerr.ErrNotFound)
	}

	tables := make(map[catalog.Particle]*grid.Grid2D, len(m))
	for p, g := range m {
		tables[p] = g
	}

	return tables, nil
}
