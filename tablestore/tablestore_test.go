// nolint
package tablestore

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libhawking/catalog"
	"github.com/sgostarter/libhawking/grid"
	"github.com/sgostarter/libhawking/yield"
	"github.com/stretchr/testify/assert"
)

const (
	utRoot = "ut-data"

	utGridText = `# greybody spin 1
0     0.1   1     10
0     0.01  0.5   0.9
0.5   0.02  0.6,  0.95
0.99  0.03  0.7   0.99
`
	utLowText = `0 1 2 0
0.5 1.5 2 0
0.99 2 2 0
`
	utHighText = `% high
0 0.9 0.1 1
0.5 0.95 0.1 1
0.99 0.99 0.1 1
`
	utYieldText = `0 0.1 1000
1 1 2
1e4 3 4
`
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(utRoot)
	_ = pathutils.MustDirExists(utRoot)

	code := m.Run()

	_ = os.RemoveAll(utRoot)

	os.Exit(code)
}

func TestParseGridText(t *testing.T) {
	g, err := ParseGridText(strings.NewReader(utGridText))
	assert.Nil(t, err)
	assert.EqualValues(t, []float64{0, 0.5, 0.99}, g.Rows.Points())
	assert.EqualValues(t, []float64{0.1, 1, 10}, g.Cols.Points())
	assert.EqualValues(t, 0.6, g.At(1, 1))

	_, err = ParseGridText(strings.NewReader("0 1 2\n1 x 3\n2 4 5\n"))
	assert.True(t, errors.Is(err, ErrTextFormat))

	_, err = ParseGridText(strings.NewReader("0 1 2\n1 2\n2 4 5\n"))
	assert.True(t, errors.Is(err, ErrTextFormat))

	_, err = ParseGridText(strings.NewReader("0 1 2\n1 2 3\n"))
	assert.True(t, errors.Is(err, ErrTextFormat))

	_, err = ParseGridText(strings.NewReader("0 1 1\n1 2 3\n2 4 5\n"))
	assert.True(t, errors.Is(err, grid.ErrInvalidAxis))
}

func TestParseFitText(t *testing.T) {
	fit, err := ParseFitText(strings.NewReader(utLowText), strings.NewReader(utHighText))
	assert.Nil(t, err)
	assert.EqualValues(t, 3, fit.Axis.Len())
	assert.EqualValues(t, 1.5, fit.Low[1][0])
	assert.EqualValues(t, 0.99, fit.High[2][0])

	_, err = ParseFitText(strings.NewReader(utLowText), strings.NewReader("0 1 2 3\n"))
	assert.True(t, errors.Is(err, ErrTextFormat))

	_, err = ParseFitText(strings.NewReader("0 1 2\n"), strings.NewReader(utHighText))
	assert.True(t, errors.Is(err, ErrTextFormat))
}

func TestFSLoaderRoundTrip(t *testing.T) {
	_ = os.RemoveAll(utRoot)
	_ = pathutils.MustDirExists(utRoot)

	fs := NewFSLoader(utRoot, rawfs.NewFSStorage(utRoot), nil)

	err := ConvertHybridText(fs, catalog.Spin1, strings.NewReader(utGridText), strings.NewReader(utLowText),
		strings.NewReader(utHighText))
	assert.Nil(t, err)

	err = ConvertYieldText(fs, "low", map[catalog.Particle]io.Reader{
		catalog.Pion: strings.NewReader(utYieldText),
	})
	assert.Nil(t, err)

	g, fit, err := fs.LoadHybrid(catalog.Spin1)
	assert.Nil(t, err)
	assert.EqualValues(t, 0.95, g.At(1, 2))
	assert.EqualValues(t, []float64{0, 0.5, 0.99}, fit.Axis.Points())

	tables, err := fs.LoadYieldTable("low")
	assert.Nil(t, err)
	assert.EqualValues(t, 4, tables[catalog.Pion].At(1, 1))

	_, _, err = fs.LoadHybrid(catalog.Spin2)
	assert.True(t, errors.Is(err, ErrLoad))

	_, err = fs.LoadYieldTable("nope")
	assert.True(t, errors.Is(err, ErrLoad))
}

func TestFSLoaderCorrupt(t *testing.T) {
	_ = os.RemoveAll(utRoot)
	_ = pathutils.MustDirExists(utRoot)

	storage := rawfs.NewFSStorage(utRoot)
	assert.Nil(t, storage.WriteFile(yieldFileName("bad"), []byte("tables: [1, 2")))
	assert.Nil(t, storage.WriteFile(yieldFileName("short"), []byte("tables:\n  pion:\n    rows: [1]\n    cols: [1, 2]\n    values: [[1, 2]]\n")))
	assert.Nil(t, storage.WriteFile(yieldFileName("who"), []byte("tables:\n  axion:\n    rows: [1, 2]\n    cols: [1, 2]\n    values: [[1, 2], [3, 4]]\n")))

	fs := NewFSLoader(utRoot, storage, nil)

	_, err := fs.LoadYieldTable("bad")
	assert.True(t, errors.Is(err, ErrLoad))

	_, err = fs.LoadYieldTable("short")
	assert.True(t, errors.Is(err, ErrLoad))
	assert.True(t, errors.Is(err, grid.ErrInsufficientGrid))

	_, err = fs.LoadYieldTable("who")
	assert.True(t, errors.Is(err, ErrLoad))
	assert.True(t, errors.Is(err, catalog.ErrUnknownParticle))
}

func TestMemLoaderAssemble(t *testing.T) {
	mem := NewMemLoader()

	err := ConvertHybridText(mem, catalog.SpinHalf, strings.NewReader(utGridText), strings.NewReader(utLowText),
		strings.NewReader(utHighText))
	assert.Nil(t, err)

	_, err = LoadGreybody(mem, []catalog.SpinClass{catalog.SpinHalf, catalog.Spin0})
	assert.True(t, errors.Is(err, ErrLoad))
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	gf, err := LoadGreybody(mem, []catalog.SpinClass{catalog.SpinHalf})
	assert.Nil(t, err)

	v, err := gf.Query(catalog.SpinHalf, 0.5, 1)
	assert.Nil(t, err)
	assert.EqualValues(t, 0.6, v)

	for _, id := range []string{"low", "high"} {
		assert.Nil(t, ConvertYieldText(mem, id, map[catalog.Particle]io.Reader{
			catalog.Pion: strings.NewReader(utYieldText),
		}))
	}

	_, err = LoadRouter(mem, []string{"low"}, []float64{100})
	assert.True(t, errors.Is(err, yield.ErrRegimeCount))

	_, err = LoadRouter(mem, []string{"low", "mid"}, []float64{100})
	assert.True(t, errors.Is(err, ErrLoad))

	router, err := LoadRouter(mem, []string{"low", "high"}, []float64{100})
	assert.Nil(t, err)
	assert.EqualValues(t, []catalog.Particle{catalog.Pion}, router.Categories())
	assert.EqualValues(t, 2, router.Query(catalog.Pion, 1, 1000))
}
