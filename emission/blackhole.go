package emission

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

const (
	// TemperatureGram is the Schwarzschild temperature of a one gram hole, in GeV.
	TemperatureGram = 1.05804e13
	// HBar is the reduced Planck constant in GeV s.
	HBar = 6.582119569e-25
)

// BlackHole is one emitting source: its mass in grams and dimensionless spin a*.
type BlackHole struct {
	MassGrams float64 `yaml:"mass" json:"mass"`
	Spin      float64 `yaml:"spin" json:"spin"`
}

func (bh BlackHole) Validate() error {
	if !(bh.MassGrams > 0) || math.IsInf(bh.MassGrams, 0) {
		return fmt.Errorf("%w: mass %v", ErrInvalidBlackHole, bh.MassGrams)
	}

	if !(bh.Spin >= 0 && bh.Spin < 1) {
		return fmt.Errorf("%w: spin %v", ErrInvalidBlackHole, bh.Spin)
	}

	return nil
}

// Temperature is the Kerr horizon temperature in GeV.
func (bh BlackHole) Temperature() float64 {
	root := math.Sqrt(1 - bh.Spin*bh.Spin)

	return TemperatureGram / bh.MassGrams * 2 * root / (1 + root)
}

// Key identifies the source instance in caches and storage.
func (bh BlackHole) Key() string {
	return cast.ToString(bh.MassGrams) + "_" + cast.ToString(bh.Spin)
}
