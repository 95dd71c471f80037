package spectrum

import (
	"errors"
	"testing"

	"github.com/sgostarter/libhawking/grid"
	"github.com/sgostarter/libhawking/yield"
	"github.com/stretchr/testify/assert"
)

var errUTUnknown = errors.New("unknown")

type utRates map[string]func(e float64) float64

func (rates utRates) Query(k string, e float64) (float64, error) {
	f, ok := rates[k]
	if !ok {
		return 0, errUTUnknown
	}

	return f(e), nil
}

func (rates utRates) Has(k string) bool {
	_, ok := rates[k]

	return ok
}

type utAttrs map[string]float64

func (attrs utAttrs) RestEnergy(k string) float64 {
	return attrs[k]
}

func utConst(v float64) func(float64) float64 {
	return func(float64) float64 {
		return v
	}
}

func utFlat(t *testing.T, rows []float64, v float64) *grid.Grid2D {
	values := make([][]float64, len(rows))
	for idx := range values {
		values[idx] = []float64{v, v}
	}

	g, err := grid.NewGrid2D(rows, []float64{1, 1000}, values)
	assert.Nil(t, err)

	return g
}

func utOut() grid.Axis {
	return grid.MustAxis([]float64{1, 10, 100, 1000})
}

func utSingleRouter(t *testing.T, emitters ...string) *yield.Router[string] {
	grids := make(map[string]*grid.Grid2D)
	for _, k := range emitters {
		grids[k] = utFlat(t, []float64{1, 10, 1000}, 1)
	}

	b, err := yield.NewBoundaries(nil)
	assert.Nil(t, err)

	r, err := yield.NewRouter([]*yield.Table[string]{yield.NewTable(grids)}, b)
	assert.Nil(t, err)

	return r
}

func utSplitRouter(t *testing.T) *yield.Router[string] {
	b, err := yield.NewBoundaries([]float64{10})
	assert.Nil(t, err)

	r, err := yield.NewRouter([]*yield.Table[string]{
		yield.NewTable(map[string]*grid.Grid2D{"tau": utFlat(t, []float64{1, 10}, 1)}),
		yield.NewTable(map[string]*grid.Grid2D{"tau": utFlat(t, []float64{10, 1000}, 2)}),
	}, b)
	assert.Nil(t, err)

	return r
}

func TestComputeSingleRegime(t *testing.T) {
	rates := utRates{"photon": utConst(3), "tau": utConst(1)}

	ig, err := NewIntegrator[string](rates, map[string]*yield.Router[string]{"photon": utSingleRouter(t, "tau")}, nil, utOut())
	assert.Nil(t, err)

	r, err := ig.Compute("photon")
	assert.Nil(t, err)

	for idx := range r.Energies {
		assert.EqualValues(t, 3, r.Direct[idx])
		// integral of e over d(log e) from 1 to 1000
		assert.InEpsilon(t, 999, r.Secondary()[idx], 1e-3)
	}
}

func TestComputeRegimeSplit(t *testing.T) {
	rates := utRates{"photon": utConst(0), "tau": utConst(1)}

	ig, err := NewIntegrator[string](rates, map[string]*yield.Router[string]{"photon": utSplitRouter(t)}, nil, utOut(),
		StepsOption(200), WorkersOption(2))
	assert.Nil(t, err)

	r, err := ig.Compute("photon")
	assert.Nil(t, err)

	for idx := range r.Energies {
		assert.EqualValues(t, 0, r.Direct[idx])
		assert.InEpsilon(t, 9*1+990*2, r.Total[idx], 1e-3)
	}
}

func TestComputeThreshold(t *testing.T) {
	rates := utRates{"photon": utConst(0), "tau": utConst(1), "top": utConst(1)}
	routers := map[string]*yield.Router[string]{"photon": utSingleRouter(t, "tau", "top")}

	ig, err := NewIntegrator[string](rates, routers, utAttrs{"tau": 100, "top": 5000}, utOut())
	assert.Nil(t, err)

	r, err := ig.Compute("photon")
	assert.Nil(t, err)

	for idx := range r.Energies {
		// top sits above the whole input range and adds nothing
		assert.InEpsilon(t, 900, r.Total[idx], 1e-3)
	}
}

func TestComputeSumDecomposition(t *testing.T) {
	rates := utRates{
		"photon": func(e float64) float64 { return 1 / e },
		"tau":    func(e float64) float64 { return e * e },
	}

	ig, err := NewIntegrator[string](rates, map[string]*yield.Router[string]{"photon": utSplitRouter(t)}, nil, utOut(),
		StepsOption(20))
	assert.Nil(t, err)

	r, err := ig.Compute("photon")
	assert.Nil(t, err)

	secondary := r.Secondary()

	for idx := range r.Energies {
		assert.True(t, secondary[idx] >= 0)
		assert.InDelta(t, r.Total[idx], r.Direct[idx]+secondary[idx], 1e-12*r.Total[idx])
	}
}

func TestComputeNegativeYieldClamped(t *testing.T) {
	b, err := yield.NewBoundaries(nil)
	assert.Nil(t, err)

	router, err := yield.NewRouter([]*yield.Table[string]{
		yield.NewTable(map[string]*grid.Grid2D{"tau": utFlat(t, []float64{1, 1000}, -1)}),
	}, b)
	assert.Nil(t, err)

	ig, err := NewIntegrator[string](utRates{"photon": utConst(2), "tau": utConst(1)},
		map[string]*yield.Router[string]{"photon": router}, nil, utOut())
	assert.Nil(t, err)

	r, err := ig.Compute("photon")
	assert.Nil(t, err)
	assert.EqualValues(t, r.Direct, r.Total)
}

func TestComputeWithoutRouter(t *testing.T) {
	rates := utRates{"photon": utConst(3), "tau": utConst(1)}

	ig, err := NewIntegrator[string](rates, map[string]*yield.Router[string]{"photon": utSingleRouter(t, "tau")}, nil, utOut())
	assert.Nil(t, err)

	r, err := ig.Compute("tau")
	assert.Nil(t, err)
	assert.EqualValues(t, r.Direct, r.Total)
	assert.EqualValues(t, []float64{1, 1, 1, 1}, r.Direct)
}

func TestComputeSecondaryOnlyTarget(t *testing.T) {
	rates := utRates{"tau": utConst(1)}

	ig, err := NewIntegrator[string](rates, map[string]*yield.Router[string]{"proton": utSingleRouter(t, "tau")}, nil, utOut())
	assert.Nil(t, err)

	r, err := ig.Compute("proton")
	assert.Nil(t, err)
	assert.EqualValues(t, []float64{0, 0, 0, 0}, r.Direct)
	assert.True(t, r.Total[0] > 0)
}

func TestComputeUnknownEmitter(t *testing.T) {
	rates := utRates{"photon": utConst(1)}

	ig, err := NewIntegrator[string](rates, map[string]*yield.Router[string]{"photon": utSingleRouter(t, "tau")}, nil, utOut())
	assert.Nil(t, err)

	_, err = ig.Compute("photon")
	assert.True(t, errors.Is(err, errUTUnknown))
}

func TestComputeWorkersAgree(t *testing.T) {
	rates := utRates{
		"photon": utConst(1),
		"tau":    func(e float64) float64 { return 1 / (1 + e) },
	}
	routers := map[string]*yield.Router[string]{"photon": utSplitRouter(t)}
	out := grid.MustAxis([]float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000})

	one, err := NewIntegrator[string](rates, routers, nil, out, WorkersOption(1))
	assert.Nil(t, err)

	many, err := NewIntegrator[string](rates, routers, nil, out, WorkersOption(8))
	assert.Nil(t, err)

	r1, err := one.Compute("photon")
	assert.Nil(t, err)

	r2, err := many.Compute("photon")
	assert.Nil(t, err)

	assert.EqualValues(t, r1, r2)
}

func TestNewIntegratorErrors(t *testing.T) {
	_, err := NewIntegrator[string](nil, nil, nil, utOut())
	assert.True(t, errors.Is(err, ErrNoRates))

	_, err = NewIntegrator[string](utRates{}, nil, nil, grid.Axis{})
	assert.True(t, errors.Is(err, grid.ErrInsufficientGrid))

	_, err = NewIntegrator[string](utRates{}, nil, nil, utOut(), InputRangeOption(0, 10))
	assert.True(t, errors.Is(err, ErrInvalidRange))

	_, err = NewIntegrator[string](utRates{}, nil, nil, utOut(), InputRangeOption(10, 5))
	assert.True(t, errors.Is(err, ErrInvalidRange))
}
