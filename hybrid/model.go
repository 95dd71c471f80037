package hybrid

import (
	"fmt"
	"math"

	"github.com/sgostarter/libhawking/grid"
)

// Coefficients feed one of the closed-form range formulas.
type Coefficients [3]float64

// FitParameters carries, for every node of the secondary axis, the coefficients
// used below (Low) and above (High) the tabulated energy range.
type FitParameters struct {
	Axis grid.Axis

	Low  []Coefficients
	High []Coefficients
}

func NewFitParameters(axis []float64, low, high []Coefficients) (*FitParameters, error) {
	a, err := grid.NewAxis(axis)
	if err != nil {
		return nil, err
	}

	if len(low) != a.Len() || len(high) != a.Len() {
		return nil, fmt.Errorf("%w: axis %d, low %d, high %d", ErrBadFitShape, a.Len(), len(low), len(high))
	}

	return &FitParameters{
		Axis: a,
		Low:  append([]Coefficients(nil), low...),
		High: append([]Coefficients(nil), high...),
	}, nil
}

// coefficientsAt interpolates each coefficient along the fit axis at a, which the
// caller has already clamped into range.
func (fp *FitParameters) coefficientsAt(cs []Coefficients, a float64) (c Coefficients) {
	pos := fp.Axis.Locate(a)
	if pos.Exact {
		return cs[pos.Index]
	}

	i := pos.Index
	a0, a1 := fp.Axis.At(i), fp.Axis.At(i+1)

	for k := range c {
		c[k] = grid.Linear(a0, cs[i][k], a1, cs[i+1][k], a)
	}

	return
}

// LowFormula is the power-law regime below the table: c0 * x^c1 * (1 + c2*x).
func LowFormula(c Coefficients, x float64) float64 {
	return c[0] * math.Pow(x, c[1]) * (1 + c[2]*x)
}

// HighFormula is the geometric-optics regime above the table, an asymptote with a
// decaying oscillation: c0 + c1*sin(c2*x)/x.
func HighFormula(c Coefficients, x float64) float64 {
	if x == 0 {
		return c[0] + c[1]*c[2]
	}

	return c[0] + c[1]*math.Sin(c[2]*x)/x
}

// Table is the per-category data: a grid over (a, x) plus fits outside its x range.
type Table struct {
	Grid *grid.Grid2D
	Fit  *FitParameters
}
