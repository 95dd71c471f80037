package catalog

import (
	"fmt"
	"sort"
)

type Particle int

const (
	Photon Particle = iota
	Gluon
	Higgs
	WBoson
	ZBoson
	Graviton
	Electron
	Muon
	Tau
	NuE
	NuMu
	NuTau
	Up
	Down
	Charm
	Strange
	Top
	Bottom
	Pion
	ChargedPion
	Proton
	Neutron

	particleCount
)

// Info holds the externally supplied attributes of a species. RestEnergy is in GeV;
// Multiplicity counts internal degrees of freedom, antiparticles included.
type Info struct {
	Name         string    `yaml:"name"`
	RestEnergy   float64   `yaml:"restEnergy"`
	Spin         SpinClass `yaml:"spin"`
	Multiplicity float64   `yaml:"multiplicity"`
	Primary      bool      `yaml:"primary"`
}

var infos = [particleCount]Info{
	Photon:      {Name: "photon", RestEnergy: 0, Spin: Spin1, Multiplicity: 2, Primary: true},
	Gluon:       {Name: "gluon", RestEnergy: 0, Spin: Spin1, Multiplicity: 16, Primary: true},
	Higgs:       {Name: "higgs", RestEnergy: 125.25, Spin: Spin0, Multiplicity: 1, Primary: true},
	WBoson:      {Name: "w", RestEnergy: 80.377, Spin: Spin1, Multiplicity: 6, Primary: true},
	ZBoson:      {Name: "z", RestEnergy: 91.1876, Spin: Spin1, Multiplicity: 3, Primary: true},
	Graviton:    {Name: "graviton", RestEnergy: 0, Spin: Spin2, Multiplicity: 2, Primary: true},
	Electron:    {Name: "electron", RestEnergy: 5.10998950e-4, Spin: SpinHalf, Multiplicity: 4, Primary: true},
	Muon:        {Name: "muon", RestEnergy: 0.1056583755, Spin: SpinHalf, Multiplicity: 4, Primary: true},
	Tau:         {Name: "tau", RestEnergy: 1.77686, Spin: SpinHalf, Multiplicity: 4, Primary: true},
	NuE:         {Name: "nu_e", RestEnergy: 0, Spin: SpinHalf, Multiplicity: 2, Primary: true},
	NuMu:        {Name: "nu_mu", RestEnergy: 0, Spin: SpinHalf, Multiplicity: 2, Primary: true},
	NuTau:       {Name: "nu_tau", RestEnergy: 0, Spin: SpinHalf, Multiplicity: 2, Primary: true},
	Up:          {Name: "up", RestEnergy: 2.16e-3, Spin: SpinHalf, Multiplicity: 12, Primary: true},
	Down:        {Name: "down", RestEnergy: 4.67e-3, Spin: SpinHalf, Multiplicity: 12, Primary: true},
	Charm:       {Name: "charm", RestEnergy: 1.27, Spin: SpinHalf, Multiplicity: 12, Primary: true},
	Strange:     {Name: "strange", RestEnergy: 9.34e-2, Spin: SpinHalf, Multiplicity: 12, Primary: true},
	Top:         {Name: "top", RestEnergy: 172.69, Spin: SpinHalf, Multiplicity: 12, Primary: true},
	Bottom:      {Name: "bottom", RestEnergy: 4.18, Spin: SpinHalf, Multiplicity: 12, Primary: true},
	Pion:        {Name: "pion", RestEnergy: 0.1349768, Spin: Spin0, Multiplicity: 1},
	ChargedPion: {Name: "charged_pion", RestEnergy: 0.13957039, Spin: Spin0, Multiplicity: 2},
	Proton:      {Name: "proton", RestEnergy: 0.93827208816, Spin: SpinHalf, Multiplicity: 4},
	Neutron:     {Name: "neutron", RestEnergy: 0.93956542052, Spin: SpinHalf, Multiplicity: 4},
}

func Particles() []Particle {
	ps := make([]Particle, 0, particleCount)
	for p := Particle(0); p < particleCount; p++ {
		ps = append(ps, p)
	}

	return ps
}

// Primaries lists the species a black hole emits directly.
func Primaries() []Particle {
	var ps []Particle

	for p := Particle(0); p < particleCount; p++ {
		if infos[p].Primary {
			ps = append(ps, p)
		}
	}

	return ps
}

func (p Particle) Valid() bool {
	return p >= 0 && p < particleCount
}

func (p Particle) String() string {
	if !p.Valid() {
		return fmt.Sprintf("particle(%d)", int(p))
	}

	return infos[p].Name
}

func (p Particle) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownParticle, int(p))
	}

	return []byte(p.String()), nil
}

func (p *Particle) UnmarshalText(text []byte) error {
	v, err := ParseParticle(string(text))
	if err != nil {
		return err
	}

	*p = v

	return nil
}

func ParseParticle(name string) (Particle, error) {
	for p := Particle(0); p < particleCount; p++ {
		if infos[p].Name == name {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownParticle, name)
}

func SortParticles(ps []Particle) {
	sort.Slice(ps, func(i, j int) bool {
		return ps[i] < ps[j]
	})
}
