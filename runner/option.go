package runner

import (
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libhawking/catalog"
	"github.com/sgostarter/libhawking/output"
)

type Options struct {
	steps    int
	workers  int
	parallel int

	cacheExpiration time.Duration

	catalog *catalog.Catalog
	storage output.Storage
	logger  l.Wrapper
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		parallel:        1,
		cacheExpiration: 10 * time.Minute,
	}

	for _, o := range option {
		o(opts)
	}

	if opts.parallel <= 0 {
		opts.parallel = 1
	}

	if opts.logger == nil {
		opts.logger = l.NewNopLoggerWrapper()
	}

	return opts
}

func StepsOption(steps int) Option {
	return func(o *Options) {
		o.steps = steps
	}
}

// WorkersOption bounds the output bins integrated at once for one hole.
func WorkersOption(workers int) Option {
	return func(o *Options) {
		o.workers = workers
	}
}

// ParallelOption bounds the holes processed at once.
func ParallelOption(parallel int) Option {
	return func(o *Options) {
		o.parallel = parallel
	}
}

func CacheExpirationOption(d time.Duration) Option {
	return func(o *Options) {
		o.cacheExpiration = d
	}
}

func CatalogOption(c *catalog.Catalog) Option {
	return func(o *Options) {
		o.catalog = c
	}
}

// StorageOption saves every computed spectrum. Without it results are only returned.
func StorageOption(storage output.Storage) Option {
	return func(o *Options) {
		o.storage = storage
	}
}

func LoggerOption(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}
