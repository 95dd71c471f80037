package tablestore

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sgostarter/libhawking/catalog"
	"github.com/sgostarter/libhawking/grid"
	"github.com/sgostarter/libhawking/hybrid"
	"github.com/spf13/cast"
)

// readRows splits the non-comment lines of r into numeric fields. Lines starting
// with '#' or '%' are skipped.
func readRows(r io.Reader) (rows [][]float64, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") || strings.HasPrefix(text, "%") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})

		row := make([]float64, len(fields))

		for idx, field := range fields {
			row[idx], err = cast.ToFloat64E(field)
			if err != nil {
				err = fmt.Errorf("%w: line %d field %d: %w", ErrTextFormat, line, idx+1, err)

				return
			}
		}

		rows = append(rows, row)
	}

	err = scanner.Err()

	return
}

// ParseGridText reads a table whose first line holds the column axis, preceded by
// one ignored corner cell, and whose other lines hold a row axis value followed by
// that row's samples.
func ParseGridText(r io.Reader) (*grid.Grid2D, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	if len(rows) < 3 {
		return nil, fmt.Errorf("%w: %d lines", ErrTextFormat, len(rows))
	}

	cols := rows[0][1:]
	rowAxis := make([]float64, 0, len(rows)-1)
	values := make([][]float64, 0, len(rows)-1)

	for idx, row := range rows[1:] {
		if len(row) != len(cols)+1 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrTextFormat, idx+1, len(row), len(cols)+1)
		}

		rowAxis = append(rowAxis, row[0])
		values = append(values, row[1:])
	}

	return grid.NewGrid2D(rowAxis, cols, values)
}

// ParseFitText reads the low and high range fits, one line per axis value:
// "a c0 c1 c2". Both inputs must list the same axis.
func ParseFitText(low, high io.Reader) (*hybrid.FitParameters, error) {
	lowAxis, lows, err := parseCoefficients(low)
	if err != nil {
		return nil, fmt.Errorf("low: %w", err)
	}

	highAxis, highs, err := parseCoefficients(high)
	if err != nil {
		return nil, fmt.Errorf("high: %w", err)
	}

	if len(lowAxis) != len(highAxis) {
		return nil, fmt.Errorf("%w: low has %d lines, high %d", ErrTextFormat, len(lowAxis), len(highAxis))
	}

	for idx := range lowAxis {
		if lowAxis[idx] != highAxis[idx] {
			return nil, fmt.Errorf("%w: axis differs at line %d", ErrTextFormat, idx+1)
		}
	}

	return hybrid.NewFitParameters(lowAxis, lows, highs)
}

func parseCoefficients(r io.Reader) (axis []float64, cs []hybrid.Coefficients, err error) {
	rows, err := readRows(r)
	if err != nil {
		return
	}

	for idx, row := range rows {
		if len(row) != 4 {
			err = fmt.Errorf("%w: line %d has %d fields, want 4", ErrTextFormat, idx+1, len(row))

			return
		}

		axis = append(axis, row[0])
		cs = append(cs, hybrid.Coefficients{row[1], row[2], row[3]})
	}

	return
}

// ConvertHybridText parses a greybody grid with its two fit files and stores them.
func ConvertHybridText(saver Saver, spin catalog.SpinClass, gridText, lowText, highText io.Reader) error {
	g, err := ParseGridText(gridText)
	if err != nil {
		return fmt.Errorf("%s grid: %w", spin.Key(), err)
	}

	fit, err := ParseFitText(lowText, highText)
	if err != nil {
		return fmt.Errorf("%s fit: %w", spin.Key(), err)
	}

	return saver.SaveHybrid(spin, g, fit)
}

// ConvertYieldText parses one grid per particle and stores them as one regime.
func ConvertYieldText(saver Saver, regimeID string, texts map[catalog.Particle]io.Reader) error {
	tables := make(map[catalog.Particle]*grid.Grid2D, len(texts))

	for p, r := range texts {
		g, err := ParseGridText(r)
		if err != nil {
			return fmt.Errorf("%s %v: %w", regimeID, p, err)
		}

		tables[p] = g
	}

	return saver.SaveYieldTable(regimeID, tables)
}
