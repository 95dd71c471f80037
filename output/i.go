package output

import "github.com/sgostarter/libhawking/catalog"

// Storage persists computed spectra. A record is addressed by run id, hole key and
// target; saving again under the same address replaces it.
type Storage interface {
	SaveSpectrum(r *Record) error
	GetSpectrum(runID uint64, holeKey string, target catalog.Particle) (*Record, error)
	ListSpectra(runID uint64) ([]*Record, error)
	ListRuns() ([]uint64, error)
}
