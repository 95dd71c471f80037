package catalog

import "fmt"

// SpinClass keys the greybody tables: every particle of the same spin shares one.
type SpinClass int

const (
	Spin0 SpinClass = iota
	SpinHalf
	Spin1
	SpinThreeHalves
	Spin2
)

var spinClasses = []SpinClass{Spin0, SpinHalf, Spin1, SpinThreeHalves, Spin2}

func SpinClasses() []SpinClass {
	return append([]SpinClass(nil), spinClasses...)
}

func (s SpinClass) Value() float64 {
	return float64(s) / 2
}

// Fermion reports half-integer spin.
func (s SpinClass) Fermion() bool {
	return int(s)%2 == 1
}

func (s SpinClass) String() string {
	switch s {
	case Spin0:
		return "0"
	case SpinHalf:
		return "1/2"
	case Spin1:
		return "1"
	case SpinThreeHalves:
		return "3/2"
	case Spin2:
		return "2"
	}

	return fmt.Sprintf("spin(%d)", int(s))
}

// Key is the file-name friendly form used by table storage.
func (s SpinClass) Key() string {
	switch s {
	case Spin0:
		return "spin_0"
	case SpinHalf:
		return "spin_1_2"
	case Spin1:
		return "spin_1"
	case SpinThreeHalves:
		return "spin_3_2"
	case Spin2:
		return "spin_2"
	}

	return fmt.Sprintf("spin_%d_x", int(s))
}

func ParseSpinClass(s string) (SpinClass, error) {
	for _, sc := range spinClasses {
		if sc.String() == s || sc.Key() == s {
			return sc, nil
		}
	}

	return 0, fmt.Errorf("%w: spin %q", ErrUnknownParticle, s)
}
