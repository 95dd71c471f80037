package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParticle(t *testing.T) {
	for _, p := range Particles() {
		v, err := ParseParticle(p.String())
		assert.Nil(t, err)
		assert.Equal(t, p, v)
	}

	_, err := ParseParticle("axion")
	assert.True(t, errors.Is(err, ErrUnknownParticle))
}

func TestParticleText(t *testing.T) {
	d, err := Electron.MarshalText()
	assert.Nil(t, err)
	assert.EqualValues(t, "electron", string(d))

	var p Particle
	assert.Nil(t, p.UnmarshalText([]byte("top")))
	assert.Equal(t, Top, p)

	_, err = Particle(999).MarshalText()
	assert.NotNil(t, err)
}

func TestCatalogOverrides(t *testing.T) {
	var c *Catalog
	assert.EqualValues(t, 172.69, c.RestEnergy(Top))
	assert.Equal(t, SpinHalf, c.Spin(Top))

	c = NewCatalog(map[Particle]Info{
		Gluon: {Name: "gluon", RestEnergy: 0.65, Spin: Spin1, Multiplicity: 16, Primary: true},
	})
	assert.EqualValues(t, 0.65, c.RestEnergy(Gluon))
	assert.EqualValues(t, 16, c.Multiplicity(Gluon))
	assert.EqualValues(t, 0, c.RestEnergy(Photon))

	_, err := c.Info(Particle(-1))
	assert.True(t, errors.Is(err, ErrUnknownParticle))
}

func TestPrimaries(t *testing.T) {
	ps := Primaries()
	assert.Contains(t, ps, Photon)
	assert.Contains(t, ps, Bottom)
	assert.NotContains(t, ps, Proton)
}

func TestSpinClass(t *testing.T) {
	assert.True(t, SpinHalf.Fermion())
	assert.True(t, SpinThreeHalves.Fermion())
	assert.False(t, Spin2.Fermion())
	assert.EqualValues(t, 1.5, SpinThreeHalves.Value())

	for _, sc := range SpinClasses() {
		v, err := ParseSpinClass(sc.Key())
		assert.Nil(t, err)
		assert.Equal(t, sc, v)
	}
}
