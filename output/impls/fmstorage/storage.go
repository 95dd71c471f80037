package fmstorage

import (
	"path/filepath"
	"sort"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libhawking/catalog"
	"github.com/sgostarter/libhawking/output"
)

func NewFMStorage(root string, storage stg.FileStorage) output.Storage {
	return NewFMStorageEx(root, storage, "spectra.json", false)
}

func NewFMStorageEx(root string, storage stg.FileStorage, fileName string, prettySerial bool) output.Storage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmStorageImpl{
		spectra: mwf.NewMemWithFile[map[uint64]map[string]*output.Record, mwf.Serial, mwf.Lock](
			make(map[uint64]map[string]*output.Record), &mwf.JSONSerial{
				MarshalIndent: prettySerial,
			}, &sync.RWMutex{}, filepath.Join(root, fileName), storage),
	}
}

type fmStorageImpl struct {
	spectra *mwf.MemWithFile[map[uint64]map[string]*output.Record, mwf.Serial, mwf.Lock]
}

func (impl *fmStorageImpl) SaveSpectrum(r *output.Record) error {
	if r == nil {
		return commerr.ErrInvalidArgument
	}

	return impl.spectra.Change(func(oldM map[uint64]map[string]*output.Record) (newM map[uint64]map[string]*output.Record, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[uint64]map[string]*output.Record)
		}

		run, ok := newM[r.RunID]
		if !ok {
			run = make(map[string]*output.Record)
			newM[r.RunID] = run
		}

		run[r.Field()] = r

		return
	})
}

func (impl *fmStorageImpl) GetSpectrum(runID uint64, holeKey string, target catalog.Particle) (r *output.Record, err error) {
	impl.spectra.Read(func(m map[uint64]map[string]*output.Record) {
		if rec, ok := m[runID][output.FieldName(holeKey, target)]; ok {
			r = rec
		} else {
			err = commerr.ErrNotFound
		}
	})

	return
}

func (impl *fmStorageImpl) ListSpectra(runID uint64) (rs []*output.Record, err error) {
	impl.spectra.Read(func(m map[uint64]map[string]*output.Record) {
		for _, r := range m[runID] {
			rs = append(rs, r)
		}
	})

	output.SortRecords(rs)

	return
}

func (impl *fmStorageImpl) ListRuns() (runIDs []uint64, err error) {
	impl.spectra.Read(func(m map[uint64]map[string]*output.Record) {
		for runID := range m {
			runIDs = append(runIDs, runID)
		}
	})

	sort.Slice(runIDs, func(i, j int) bool {
		return runIDs[i] < runIDs[j]
	})

	return
}
