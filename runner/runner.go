package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libhawking/catalog"
	"github.com/sgostarter/libhawking/emission"
	"github.com/sgostarter/libhawking/grid"
	"github.com/sgostarter/libhawking/hybrid"
	"github.com/sgostarter/libhawking/output"
	"github.com/sgostarter/libhawking/ratecache"
	"github.com/sgostarter/libhawking/spectrum"
	"github.com/sgostarter/libhawking/yield"
	"github.com/spf13/cast"
	"golang.org/x/sync/errgroup"
)

var ErrNoTables = errors.New("no tables")

// Runner computes spectra for many holes. The greybody and yield tables are shared
// read-only by every hole; each hole gets its own rate cache.
type Runner struct {
	logger l.Wrapper

	catalog  *catalog.Catalog
	greybody *hybrid.GridFit[catalog.SpinClass]
	routers  map[catalog.Particle]*yield.Router[catalog.Particle]
	input    grid.Axis
	output   grid.Axis
	emitters []catalog.Particle

	pool    *ratecache.Pool[catalog.Particle]
	storage output.Storage

	steps    int
	workers  int
	parallel int
}

func NewRunner(greybody *hybrid.GridFit[catalog.SpinClass], routers map[catalog.Particle]*yield.Router[catalog.Particle],
	input, out grid.Axis, opts ...Option) (*Runner, error) {
	if greybody == nil {
		return nil, ErrNoTables
	}

	if input.Len() < 2 || out.Len() < 2 {
		return nil, grid.ErrInsufficientGrid
	}

	o := optionNew(opts...)

	if o.catalog == nil {
		o.catalog = catalog.NewCatalog(nil)
	}

	logger := o.logger.WithFields(l.StringField(l.ClsKey, "runnerImpl"))

	return &Runner{
		logger:   logger,
		catalog:  o.catalog,
		greybody: greybody,
		routers:  routers,
		input:    input,
		output:   out,
		emitters: emitters(routers),
		pool:     ratecache.NewPool[catalog.Particle](o.cacheExpiration, logger),
		storage:  o.storage,
		steps:    o.steps,
		workers:  o.workers,
		parallel: o.parallel,
	}, nil
}

// emitters is every primary species plus anything a yield table expects rates for.
func emitters(routers map[catalog.Particle]*yield.Router[catalog.Particle]) []catalog.Particle {
	seen := make(map[catalog.Particle]struct{})

	var ps []catalog.Particle

	add := func(p catalog.Particle) {
		if _, ok := seen[p]; ok {
			return
		}

		seen[p] = struct{}{}

		ps = append(ps, p)
	}

	for _, p := range catalog.Primaries() {
		add(p)
	}

	for _, router := range routers {
		for _, p := range router.Categories() {
			add(p)
		}
	}

	catalog.SortParticles(ps)

	return ps
}

// Run processes every hole for every target under a fresh run id. Holes run in
// parallel; the first failure cancels the holes not yet started.
func (impl *Runner) Run(ctx context.Context, holes []emission.BlackHole, targets []catalog.Particle) (
	runID uint64, records []*output.Record, err error) {
	runID = snowflake.ID()

	logger := impl.logger.WithFields(l.UInt64Field("runID", runID))
	logger.WithFields(l.IntField("holes", len(holes)), l.IntField("targets", len(targets))).Info("run start")

	perHole := make([][]*output.Record, len(holes))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(impl.parallel)

	for idx := range holes {
		idx := idx

		eg.Go(func() error {
			if e := egCtx.Err(); e != nil {
				return e
			}

			holesActive.Inc()
			defer holesActive.Dec()

			rs, e := impl.processHole(runID, holes[idx], targets)
			if e != nil {
				holesTotal.WithLabelValues("error").Inc()

				return fmt.Errorf("hole %s: %w", holes[idx].Key(), e)
			}

			holesTotal.WithLabelValues("ok").Inc()

			perHole[idx] = rs

			return nil
		})
	}

	if err = eg.Wait(); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("run failed")

		return
	}

	for _, rs := range perHole {
		records = append(records, rs...)
	}

	logger.WithFields(l.IntField("records", len(records))).Info("run done")

	return
}

// Rates returns the rate cache of a hole, building it when it is not pooled.
func (impl *Runner) Rates(hole emission.BlackHole) (*ratecache.Cache[catalog.Particle], error) {
	return impl.pool.Get(hole.Key(), func() (*ratecache.Cache[catalog.Particle], error) {
		fn, err := emission.NewFunc(impl.greybody, impl.catalog, hole)
		if err != nil {
			return nil, err
		}

		start := time.Now()

		c, err := ratecache.Build(impl.emitters, fn, impl.input, impl.catalog)
		if err != nil {
			return nil, err
		}

		rateCacheBuildDuration.Observe(time.Since(start).Seconds())

		return c, nil
	})
}

func (impl *Runner) processHole(runID uint64, hole emission.BlackHole, targets []catalog.Particle) (
	records []*output.Record, err error) {
	rates, err := impl.Rates(hole)
	if err != nil {
		return
	}

	integrator, err := spectrum.NewIntegrator[catalog.Particle](rates, impl.routers, impl.catalog, impl.output,
		spectrum.StepsOption(impl.steps), spectrum.WorkersOption(impl.workers),
		spectrum.InputRangeOption(impl.input.Min(), impl.input.Max()), spectrum.LoggerOption(impl.logger))
	if err != nil {
		return
	}

	for _, target := range targets {
		start := time.Now()

		var result spectrum.Result

		result, err = integrator.Compute(target)
		if err != nil {
			err = fmt.Errorf("%s: %w", target, err)

			return
		}

		spectrumDuration.WithLabelValues(target.String()).Observe(time.Since(start).Seconds())

		r := &output.Record{
			RunID:    runID,
			Hole:     hole,
			Target:   target,
			Spectrum: result,
			CreateAt: time.Now().Unix(),
		}

		if impl.storage != nil {
			if err = impl.storage.SaveSpectrum(r); err != nil {
				return
			}
		}

		records = append(records, r)
	}

	impl.logger.WithFields(l.StringField("mass", cast.ToString(hole.MassGrams)), l.StringField("spin", cast.ToString(hole.Spin)),
		l.StringField("temperature", cast.ToString(hole.Temperature()))).Debug("hole done")

	return
}
