package tablestore

import (
	"github.com/sgostarter/libhawking/catalog"
	"github.com/sgostarter/libhawking/grid"
	"github.com/sgostarter/libhawking/hybrid"
)

type gridBlob struct {
	Rows   []float64   `yaml:"rows"`
	Cols   []float64   `yaml:"cols"`
	Values [][]float64 `yaml:"values"`
}

type fitBlob struct {
	Axis []float64             `yaml:"axis"`
	Low  []hybrid.Coefficients `yaml:"low"`
	High []hybrid.Coefficients `yaml:"high"`
}

type hybridBlob struct {
	Grid gridBlob `yaml:"grid"`
	Fit  fitBlob  `yaml:"fit"`
}

// yieldBlob keys grids by particle name.
type yieldBlob struct {
	Tables map[string]gridBlob `yaml:"tables"`
}

func toGridBlob(g *grid.Grid2D) gridBlob {
	return gridBlob{
		Rows:   g.Rows.Points(),
		Cols:   g.Cols.Points(),
		Values: g.Values(),
	}
}

func (b gridBlob) toGrid() (*grid.Grid2D, error) {
	return grid.NewGrid2D(b.Rows, b.Cols, b.Values)
}

func toFitBlob(fit *hybrid.FitParameters) fitBlob {
	return fitBlob{
		Axis: fit.Axis.Points(),
		Low:  fit.Low,
		High: fit.High,
	}
}

func (b fitBlob) toFit() (*hybrid.FitParameters, error) {
	return hybrid.NewFitParameters(b.Axis, b.Low, b.High)
}

func hybridFileName(spin catalog.SpinClass) string {
	return "greybody_" + spin.Key() + ".yaml"
}

func yieldFileName(regimeID string) string {
	return "yield_" + regimeID + ".yaml"
}
