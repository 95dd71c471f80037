package catalog

// Catalog resolves species attributes. The zero value serves the built-in table;
// overrides replace whole entries.
type Catalog struct {
	overrides map[Particle]Info
}

func NewCatalog(overrides map[Particle]Info) *Catalog {
	c := &Catalog{
		overrides: make(map[Particle]Info, len(overrides)),
	}

	for p, info := range overrides {
		c.overrides[p] = info
	}

	return c
}

func (c *Catalog) Info(p Particle) (info Info, err error) {
	if c != nil {
		if o, ok := c.overrides[p]; ok {
			info = o

			return
		}
	}

	if !p.Valid() {
		err = ErrUnknownParticle

		return
	}

	info = infos[p]

	return
}

// RestEnergy is in GeV. Unknown species report zero.
func (c *Catalog) RestEnergy(p Particle) float64 {
	info, _ := c.Info(p)

	return info.RestEnergy
}

func (c *Catalog) Multiplicity(p Particle) float64 {
	info, _ := c.Info(p)

	return info.Multiplicity
}

func (c *Catalog) Spin(p Particle) SpinClass {
	info, _ := c.Info(p)

	return info.Spin
}
