package emission

import (
	"errors"
	"math"
	"testing"

	"github.com/sgostarter/libhawking/catalog"
	"github.com/sgostarter/libhawking/grid"
	"github.com/sgostarter/libhawking/hybrid"
	"github.com/stretchr/testify/assert"
)

// utGreybody is a flat unit greybody for every spin class but spin 2.
func utGreybody(t *testing.T) *hybrid.GridFit[catalog.SpinClass] {
	tables := make(map[catalog.SpinClass]hybrid.Table)

	for _, s := range []catalog.SpinClass{catalog.Spin0, catalog.SpinHalf, catalog.Spin1} {
		g, err := grid.NewGrid2D([]float64{0, 0.99}, []float64{0.1, 10}, [][]float64{{1, 1}, {1, 1}})
		assert.Nil(t, err)

		fit, err := hybrid.NewFitParameters([]float64{0, 0.99},
			[]hybrid.Coefficients{{1, 0, 0}, {1, 0, 0}}, []hybrid.Coefficients{{1, 0, 0}, {1, 0, 0}})
		assert.Nil(t, err)

		tables[s] = hybrid.Table{Grid: g, Fit: fit}
	}

	gf, err := hybrid.NewGridFit(tables)
	assert.Nil(t, err)

	return gf
}

func TestTemperature(t *testing.T) {
	assert.InDelta(t, 1.05804e3, BlackHole{MassGrams: 1e10}.Temperature(), 1e-9)

	root := math.Sqrt(1 - 0.25)
	assert.InDelta(t, 1.05804e3*2*root/(1+root), BlackHole{MassGrams: 1e10, Spin: 0.5}.Temperature(), 1e-9)

	assert.True(t, BlackHole{MassGrams: 1e10, Spin: 0.9}.Temperature() < BlackHole{MassGrams: 1e10}.Temperature())
}

func TestValidate(t *testing.T) {
	assert.Nil(t, BlackHole{MassGrams: 1e15}.Validate())
	assert.True(t, errors.Is(BlackHole{}.Validate(), ErrInvalidBlackHole))
	assert.True(t, errors.Is(BlackHole{MassGrams: math.NaN()}.Validate(), ErrInvalidBlackHole))
	assert.True(t, errors.Is(BlackHole{MassGrams: 1e15, Spin: 1}.Validate(), ErrInvalidBlackHole))
	assert.True(t, errors.Is(BlackHole{MassGrams: 1e15, Spin: -0.1}.Validate(), ErrInvalidBlackHole))
}

func TestRate(t *testing.T) {
	bh := BlackHole{MassGrams: 1e10}
	temperature := bh.Temperature()

	fn, err := NewFunc(utGreybody(t), nil, bh)
	assert.Nil(t, err)

	v, err := fn(catalog.Photon, temperature)
	assert.Nil(t, err)
	assert.InDelta(t, 1, v*(2*math.Pi*HBar)*(math.E-1)/2, 1e-9)

	boson, err := fn(catalog.Higgs, 2*temperature)
	assert.Nil(t, err)

	fermion, err := fn(catalog.NuE, 2*temperature)
	assert.Nil(t, err)

	// higgs has one degree of freedom, a neutrino two
	assert.InDelta(t, (math.Exp(2)-1)/(math.Exp(2)+1), fermion/2/boson, 1e-9)

	v, err = fn(catalog.Photon, 0)
	assert.Nil(t, err)
	assert.EqualValues(t, 0, v)

	v, err = fn(catalog.Photon, 1e6*temperature)
	assert.Nil(t, err)
	assert.EqualValues(t, 0, v)

	_, err = fn(catalog.Graviton, temperature)
	assert.True(t, errors.Is(err, hybrid.ErrUnknownCategory))

	_, err = fn(catalog.Particle(999), temperature)
	assert.True(t, errors.Is(err, catalog.ErrUnknownParticle))
}

func TestNewFuncErrors(t *testing.T) {
	_, err := NewFunc(nil, nil, BlackHole{MassGrams: 1})
	assert.True(t, errors.Is(err, ErrNoGreybody))

	_, err = NewFunc(utGreybody(t), nil, BlackHole{})
	assert.True(t, errors.Is(err, ErrInvalidBlackHole))
}

func TestKey(t *testing.T) {
	assert.NotEqual(t, BlackHole{MassGrams: 1e10}.Key(), BlackHole{MassGrams: 1e11}.Key())
	assert.NotEqual(t, BlackHole{MassGrams: 1e10}.Key(), BlackHole{MassGrams: 1e10, Spin: 0.1}.Key())
}
