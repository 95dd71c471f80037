package grid

import "fmt"

type Mode int

const (
	ModeExact Mode = iota
	ModeRowLinear
	ModeColumnLinear
	ModeBilinear
)

func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModeRowLinear:
		return "row-linear"
	case ModeColumnLinear:
		return "column-linear"
	case ModeBilinear:
		return "bilinear"
	}

	return fmt.Sprintf("mode(%d)", int(m))
}

// Grid2D is a dense table f(r, c) sampled on Rows x Cols. It is immutable once built.
type Grid2D struct {
	Rows Axis
	Cols Axis

	values [][]float64
}

func NewGrid2D(rows, cols []float64, values [][]float64) (*Grid2D, error) {
	rowAxis, err := NewAxis(rows)
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	colAxis, err := NewAxis(cols)
	if err != nil {
		return nil, fmt.Errorf("cols: %w", err)
	}

	if len(values) != rowAxis.Len() {
		return nil, fmt.Errorf("%w: %d rows, %d value rows", ErrShapeMismatch, rowAxis.Len(), len(values))
	}

	vs := make([][]float64, len(values))

	for idx, row := range values {
		if len(row) != colAxis.Len() {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShapeMismatch, idx, len(row), colAxis.Len())
		}

		vs[idx] = append([]float64(nil), row...)
	}

	return &Grid2D{
		Rows:   rowAxis,
		Cols:   colAxis,
		values: vs,
	}, nil
}

func (g *Grid2D) At(i, j int) float64 {
	return g.values[i][j]
}

// Values returns a deep copy of the sampled values.
func (g *Grid2D) Values() [][]float64 {
	vs := make([][]float64, len(g.values))
	for idx, row := range g.values {
		vs[idx] = append([]float64(nil), row...)
	}

	return vs
}

func (g *Grid2D) Covers(r, c float64) bool {
	return g.Rows.Contains(r) && g.Cols.Contains(c)
}

// Interpolate evaluates the table at (r, c). Each axis resolves to an exact node
// or a bracket independently, giving one of four modes. Outside the covered
// rectangle the nearest bracket is extrapolated linearly.
func (g *Grid2D) Interpolate(r, c float64) (float64, Mode) {
	rp := g.Rows.Locate(r)
	cp := g.Cols.Locate(c)

	i, j := rp.Index, cp.Index

	switch {
	case rp.Exact && cp.Exact:
		return g.values[i][j], ModeExact
	case rp.Exact:
		return Linear(g.Cols.At(j), g.values[i][j], g.Cols.At(j+1), g.values[i][j+1], c), ModeColumnLinear
	case cp.Exact:
		return Linear(g.Rows.At(i), g.values[i][j], g.Rows.At(i+1), g.values[i+1][j], r), ModeRowLinear
	}

	fr := g.Rows.Fraction(i, r)
	fc := g.Cols.Fraction(j, c)

	return Bilinear(g.values[i][j], g.values[i][j+1], g.values[i+1][j], g.values[i+1][j+1], fc, fr), ModeBilinear
}
