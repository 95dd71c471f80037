package tablestore

import (
	"fmt"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libhawking/catalog"
	"github.com/sgostarter/libhawking/grid"
	"github.com/sgostarter/libhawking/hybrid"
	"gopkg.in/yaml.v3"
)

type FSLoader struct {
	logger  l.Wrapper
	storage stg.FileStorage
}

func NewFSLoader(root string, storage stg.FileStorage, logger l.Wrapper) *FSLoader {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if storage == nil {
		storage = rawfs.NewFSStorage(root)
	}

	return &FSLoader{
		logger:  logger.WithFields(l.StringField(l.ClsKey, "fsTableLoader")),
		storage: storage,
	}
}

func (impl *FSLoader) load(name string, v interface{}) error {
	d, err := impl.storage.ReadFile(name)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLoad, name, err)
	}

	if err = yaml.Unmarshal(d, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLoad, name, err)
	}

	impl.logger.WithFields(l.StringField("file", name), l.IntField("size", len(d))).Debug("table loaded")

	return nil
}

func (impl *FSLoader) save(name string, v interface{}) error {
	d, err := yaml.Marshal(v)
	if err != nil {
		return err
	}

	return impl.storage.WriteFile(name, d)
}

func (impl *FSLoader) LoadHybrid(spin catalog.SpinClass) (g *grid.Grid2D, fit *hybrid.FitParameters, err error) {
	name := hybridFileName(spin)

	var blob hybridBlob

	if err = impl.load(name, &blob); err != nil {
		return
	}

	g, err = blob.Grid.toGrid()
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrLoad, name, err)

		return
	}

	fit, err = blob.Fit.toFit()
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrLoad, name, err)

		return
	}

	return
}

func (impl *FSLoader) LoadYieldTable(regimeID string) (tables map[catalog.Particle]*grid.Grid2D, err error) {
	name := yieldFileName(regimeID)

	var blob yieldBlob

	if err = impl.load(name, &blob); err != nil {
		return
	}

	tables = make(map[catalog.Particle]*grid.Grid2D, len(blob.Tables))

	for particleName, gb := range blob.Tables {
		p, e := catalog.ParseParticle(particleName)
		if e != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoad, name, e)
		}

		g, e := gb.toGrid()
		if e != nil {
			return nil, fmt.Errorf("%w: %s: %s: %w", ErrLoad, name, particleName, e)
		}

		tables[p] = g
	}

	return
}

func (impl *FSLoader) SaveHybrid(spin catalog.SpinClass, g *grid.Grid2D, fit *hybrid.FitParameters) error {
	return impl.save(hybridFileName(spin), hybridBlob{
		Grid: toGridBlob(g),
		Fit:  toFitBlob(fit),
	})
}

func (impl *FSLoader) SaveYieldTable(regimeID string, tables map[catalog.Particle]*grid.Grid2D) error {
	blob := yieldBlob{
		Tables: make(map[string]gridBlob, len(tables)),
	}

	for p, g := range tables {
		blob.Tables[p.String()] = toGridBlob(g)
	}

	return impl.save(yieldFileName(regimeID), blob)
}
