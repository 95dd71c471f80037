package spectrum

import (
	"runtime"

	"github.com/sgostarter/i/l"
)

const defaultSteps = 100

type Options struct {
	steps   int
	workers int

	inputLo float64
	inputHi float64

	logger l.Wrapper
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}

	for _, o := range option {
		o(opts)
	}

	if opts.steps <= 0 {
		opts.steps = defaultSteps
	}

	if opts.workers <= 0 {
		opts.workers = runtime.GOMAXPROCS(0)
	}

	if opts.logger == nil {
		opts.logger = l.NewNopLoggerWrapper()
	}

	return opts
}

// StepsOption sets the number of trapezoid panels per regime span.
func StepsOption(steps int) Option {
	return func(o *Options) {
		o.steps = steps
	}
}

// WorkersOption bounds the number of output bins computed at once. Defaults to
// GOMAXPROCS.
func WorkersOption(workers int) Option {
	return func(o *Options) {
		o.workers = workers
	}
}

// InputRangeOption sets the emitter energies integrated over. Defaults to the
// output grid range.
func InputRangeOption(lo, hi float64) Option {
	return func(o *Options) {
		o.inputLo = lo
		o.inputHi = hi
	}
}

func LoggerOption(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}
