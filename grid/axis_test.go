package grid

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAxis(t *testing.T) {
	_, err := NewAxis([]float64{1})
	assert.True(t, errors.Is(err, ErrInsufficientGrid))

	_, err = NewAxis(nil)
	assert.True(t, errors.Is(err, ErrInsufficientGrid))

	_, err = NewAxis([]float64{1, 1, 2})
	assert.True(t, errors.Is(err, ErrInvalidAxis))

	_, err = NewAxis([]float64{1, math.NaN()})
	assert.True(t, errors.Is(err, ErrInvalidAxis))

	_, err = NewAxis([]float64{1, math.Inf(1)})
	assert.True(t, errors.Is(err, ErrInvalidAxis))

	src := []float64{1, 2, 3}
	axis, err := NewAxis(src)
	assert.Nil(t, err)

	src[0] = 100
	assert.EqualValues(t, 1, axis.Min())
	assert.EqualValues(t, 3, axis.Max())
	assert.EqualValues(t, 3, axis.Len())
}

func TestAxisLocate(t *testing.T) {
	axis := MustAxis([]float64{10, 50, 100, 500})

	cases := []struct {
		v     float64
		index int
		exact bool
	}{
		{10, 0, true},
		{50, 1, true},
		{500, 3, true},
		{11, 0, false},
		{75, 1, false},
		{499, 2, false},
		{1, 0, false},
		{1000, 2, false},
	}

	for _, c := range cases {
		pos := axis.Locate(c.v)
		assert.EqualValues(t, c.index, pos.Index, "value %v", c.v)
		assert.EqualValues(t, c.exact, pos.Exact, "value %v", c.v)
	}
}

func TestAxisLocateBracketRange(t *testing.T) {
	axis := MustAxis([]float64{0.5, 1, 2, 4, 8, 16, 32})

	for v := 0.5; v < 32; v += 0.37 {
		pos := axis.Locate(v)
		if pos.Exact {
			assert.EqualValues(t, v, axis.At(pos.Index))

			continue
		}

		assert.True(t, axis.At(pos.Index) <= v)
		assert.True(t, v < axis.At(pos.Index+1))
	}
}

func TestAxisClamp(t *testing.T) {
	axis := MustAxis([]float64{0, 0.5, 0.99})

	assert.EqualValues(t, 0, axis.Clamp(-1))
	assert.EqualValues(t, 0.99, axis.Clamp(2))
	assert.EqualValues(t, 0.3, axis.Clamp(0.3))
}
