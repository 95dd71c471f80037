package spectrum

import (
	"cmp"
	"fmt"
	"math"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libhawking/grid"
	"github.com/sgostarter/libhawking/yield"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Result holds the curves of one target, aligned with Energies.
type Result struct {
	Energies []float64 `json:"energies" yaml:"energies"`
	Direct   []float64 `json:"direct" yaml:"direct"`
	Total    []float64 `json:"total" yaml:"total"`
}

// Secondary is the decay contribution, Total minus Direct.
func (r Result) Secondary() []float64 {
	s := make([]float64, len(r.Total))
	for idx := range s {
		s[idx] = r.Total[idx] - r.Direct[idx]
	}

	return s
}

// Integrator folds the primary rates of every emitter through the regime yield
// tables of a target species. It keeps no per-call state, so Compute may run
// concurrently for different targets.
type Integrator[K cmp.Ordered] struct {
	logger l.Wrapper

	rates   RateSource[K]
	routers map[K]*yield.Router[K]
	attrs   Attributes[K]
	out     grid.Axis

	steps   int
	workers int
	inLo    float64
	inHi    float64
}

func NewIntegrator[K cmp.Ordered](rates RateSource[K], routers map[K]*yield.Router[K], attrs Attributes[K],
	out grid.Axis, opts ...Option) (*Integrator[K], error) {
	if rates == nil {
		return nil, ErrNoRates
	}

	if out.Len() < 2 {
		return nil, grid.ErrInsufficientGrid
	}

	o := optionNew(opts...)

	inLo, inHi := o.inputLo, o.inputHi
	if inLo == 0 && inHi == 0 {
		inLo, inHi = out.Min(), out.Max()
	}

	if !(inLo > 0) || !(inHi > inLo) || math.IsInf(inHi, 0) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, inLo, inHi)
	}

	return &Integrator[K]{
		logger:  o.logger.WithFields(l.StringField(l.ClsKey, "spectralIntegrator")),
		rates:   rates,
		routers: routers,
		attrs:   attrs,
		out:     out,
		steps:   o.steps,
		workers: o.workers,
		inLo:    inLo,
		inHi:    inHi,
	}, nil
}

// Compute returns the direct and total spectra of target on the output grid.
func (impl *Integrator[K]) Compute(target K) (r Result, err error) {
	start := time.Now()

	energies := impl.out.Points()

	r = Result{
		Energies: energies,
		Direct:   make([]float64, len(energies)),
		Total:    make([]float64, len(energies)),
	}

	router := impl.routers[target]

	var emitters []K
	if router != nil {
		emitters = router.Categories()
	}

	direct := true
	if checker, ok := impl.rates.(categoryChecker[K]); ok {
		direct = checker.Has(target)
	}

	var eg errgroup.Group

	eg.SetLimit(impl.workers)

	for idx := range energies {
		idx := idx

		eg.Go(func() error {
			eOut := energies[idx]

			var d float64

			if direct {
				v, e := impl.rates.Query(target, eOut)
				if e != nil {
					return e
				}

				d = v
			}

			var secondary float64

			for _, k := range emitters {
				v, e := impl.fold(router, k, eOut)
				if e != nil {
					return e
				}

				secondary += v
			}

			if secondary < 0 || math.IsNaN(secondary) {
				secondary = 0
			}

			r.Direct[idx] = d
			r.Total[idx] = d + secondary

			return nil
		})
	}

	err = eg.Wait()
	if err != nil {
		impl.logger.WithFields(l.StringField("target", fmt.Sprint(target)), l.ErrorField(err)).
			Error("compute spectrum failed")

		return Result{}, err
	}

	impl.logger.WithFields(l.StringField("target", fmt.Sprint(target)), l.IntField("bins", len(energies)),
		l.IntField("emitters", len(emitters)), l.StringField("cost", time.Since(start).String())).Debug("spectrum computed")

	return
}

// fold integrates e * rate(k, e) * yield(k, e, eOut) over log e, regime by regime.
func (impl *Integrator[K]) fold(router *yield.Router[K], k K, eOut float64) (sum float64, err error) {
	lo := impl.inLo
	if impl.attrs != nil {
		lo = math.Max(lo, impl.attrs.RestEnergy(k))
	}

	for _, span := range router.RegimesOverlapping(lo, impl.inHi) {
		if !(span.Lo > 0) || span.Hi <= span.Lo {
			continue
		}

		var v float64

		v, err = impl.integrateSpan(router, span, k, eOut)
		if err != nil {
			return
		}

		sum += v
	}

	return
}

func (impl *Integrator[K]) integrateSpan(router *yield.Router[K], span yield.Span, k K, eOut float64) (float64, error) {
	xs := floats.Span(make([]float64, impl.steps+1), math.Log(span.Lo), math.Log(span.Hi))
	fs := make([]float64, len(xs))

	for idx, x := range xs {
		e := math.Exp(x)

		switch idx {
		case 0:
			e = span.Lo
		case len(xs) - 1:
			e = span.Hi
		}

		rate, err := impl.rates.Query(k, e)
		if err != nil {
			return 0, err
		}

		if rate == 0 {
			continue
		}

		fs[idx] = e * rate * router.QueryRegime(span.Regime, k, e, eOut)
	}

	return integrate.Trapezoidal(xs, fs), nil
}
