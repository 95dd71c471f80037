package output

import (
	"fmt"
	"sort"

	"github.com/sgostarter/libhawking/catalog"
	"github.com/sgostarter/libhawking/emission"
	"github.com/sgostarter/libhawking/spectrum"
)

type Record struct {
	RunID    uint64             `json:"runID" yaml:"runID"`
	Hole     emission.BlackHole `json:"hole" yaml:"hole"`
	Target   catalog.Particle   `json:"target" yaml:"target"`
	Spectrum spectrum.Result    `json:"spectrum" yaml:"spectrum"`
	CreateAt int64              `json:"createAt" yaml:"createAt"`
}

func (r *Record) Field() string {
	return FieldName(r.Hole.Key(), r.Target)
}

func FieldName(holeKey string, target catalog.Particle) string {
	return fmt.Sprintf("%s:%s", holeKey, target)
}

// SortRecords orders by hole mass, then spin, then target.
func SortRecords(rs []*Record) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].Hole.MassGrams != rs[j].Hole.MassGrams {
			return rs[i].Hole.MassGrams < rs[j].Hole.MassGrams
		}

		if rs[i].Hole.Spin != rs[j].Hole.Spin {
			return rs[i].Hole.Spin < rs[j].Hole.Spin
		}

		return rs[i].Target < rs[j].Target
	})
}
