package grid

import (
	"fmt"
	"math"
	"sort"
)

// Axis is a strictly increasing sequence of finite values with at least two points.
type Axis struct {
	points []float64
}

func NewAxis(points []float64) (Axis, error) {
	if len(points) < 2 {
		return Axis{}, fmt.Errorf("%w: %d point(s)", ErrInsufficientGrid, len(points))
	}

	for idx, p := range points {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return Axis{}, fmt.Errorf("%w: non-finite value at %d", ErrInvalidAxis, idx)
		}

		if idx > 0 && p <= points[idx-1] {
			return Axis{}, fmt.Errorf("%w: not strictly increasing at %d", ErrInvalidAxis, idx)
		}
	}

	return Axis{
		points: append([]float64(nil), points...),
	}, nil
}

func MustAxis(points []float64) Axis {
	axis, err := NewAxis(points)
	if err != nil {
		panic(err)
	}

	return axis
}

func (axis Axis) Len() int {
	return len(axis.points)
}

func (axis Axis) At(idx int) float64 {
	return axis.points[idx]
}

func (axis Axis) Min() float64 {
	return axis.points[0]
}

func (axis Axis) Max() float64 {
	return axis.points[len(axis.points)-1]
}

// Points returns a copy of the axis values.
func (axis Axis) Points() []float64 {
	return append([]float64(nil), axis.points...)
}

func (axis Axis) Contains(v float64) bool {
	return v >= axis.Min() && v <= axis.Max()
}

// Clamp pins v into [Min, Max].
func (axis Axis) Clamp(v float64) float64 {
	if v < axis.Min() {
		return axis.Min()
	}

	if v > axis.Max() {
		return axis.Max()
	}

	return v
}

// Position is the result of locating a value on an axis. When Exact is false,
// Index is the lower bracketing node.
type Position struct {
	Index int
	Exact bool
}

// Locate finds v on the axis by binary search. Values outside the axis get the
// nearest bracket, so callers decide whether extrapolation is acceptable.
func (axis Axis) Locate(v float64) Position {
	n := len(axis.points)

	i := sort.SearchFloat64s(axis.points, v)
	if i < n && axis.points[i] == v {
		return Position{Index: i, Exact: true}
	}

	i--

	if i < 0 {
		i = 0
	} else if i > n-2 {
		i = n - 2
	}

	return Position{Index: i}
}

// Fraction returns where v sits between the nodes idx and idx+1, 0 at idx and 1 at idx+1.
func (axis Axis) Fraction(idx int, v float64) float64 {
	x0, x1 := axis.points[idx], axis.points[idx+1]

	return (v - x0) / (x1 - x0)
}
