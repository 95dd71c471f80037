package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libhawking/catalog"
	"github.com/sgostarter/libhawking/config"
	"github.com/sgostarter/libhawking/output"
	"github.com/sgostarter/libhawking/output/impls/fmstorage"
	"github.com/sgostarter/libhawking/output/impls/redisimpls"
	"github.com/sgostarter/libhawking/runner"
	"github.com/sgostarter/libhawking/tablestore"
	"github.com/sgostarter/libhawking/yield"
	"github.com/spf13/cobra"
)

func runCmd(newLogger func() l.Wrapper) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute the spectra described by a config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromFile(configPath)
			if err != nil {
				return err
			}

			if err = cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, newLogger())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "hawkspec.yaml", "Config file path (YAML)")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, logger l.Wrapper) error {
	if cfg.Metrics.Address != "" {
		go serveMetrics(cfg.Metrics.Address, logger)
	}

	loader := tablestore.NewFSLoader(cfg.Tables.Root, nil, logger)

	spins, err := cfg.SpinClasses()
	if err != nil {
		return err
	}

	greybody, err := tablestore.LoadGreybody(loader, spins)
	if err != nil {
		return err
	}

	routers := make(map[catalog.Particle]*yield.Router[catalog.Particle], len(cfg.Targets))
	targets := make([]catalog.Particle, 0, len(cfg.Targets))

	for _, tc := range cfg.Targets {
		target, e := catalog.ParseParticle(tc.Particle)
		if e != nil {
			return e
		}

		routers[target], e = tablestore.LoadRouter(loader, tc.Regimes, tc.ThresholdValues())
		if e != nil {
			return fmt.Errorf("%s: %w", tc.Particle, e)
		}

		targets = append(targets, target)
	}

	input, err := cfg.Input.Axis()
	if err != nil {
		return err
	}

	out, err := cfg.Output.Axis()
	if err != nil {
		return err
	}

	storage, err := newStorage(cfg.Storage, logger)
	if err != nil {
		return err
	}

	r, err := runner.NewRunner(greybody, routers, input, out,
		runner.StepsOption(cfg.Integration.Steps), runner.WorkersOption(cfg.Integration.Workers),
		runner.ParallelOption(cfg.Integration.Parallel), runner.CacheExpirationOption(cfg.Integration.CacheExpiration),
		runner.StorageOption(storage), runner.LoggerOption(logger))
	if err != nil {
		return err
	}

	runID, records, err := r.Run(ctx, cfg.BlackHoles(), targets)
	if err != nil {
		return err
	}

	fmt.Printf("run %d: %d spectra stored (%s)\n", runID, len(records), cfg.Storage.Type)

	return nil
}

func newStorage(sc config.StorageConfig, logger l.Wrapper) (output.Storage, error) {
	switch sc.Type {
	case "redis":
		opts, err := redis.ParseURL(sc.RedisDSN)
		if err != nil {
			return nil, err
		}

		return redisimpls.NewRedisStorage(sc.PreKey, redis.NewClient(opts), logger), nil
	case "file":
		_ = pathutils.MustDirExists(sc.Root)

		return fmstorage.NewFMStorageEx("", rawfs.NewFSStorage(sc.Root), sc.FileName, sc.Pretty), nil
	}

	return nil, fmt.Errorf("%w: storage type %q", config.ErrInvalidConfig, sc.Type)
}

func serveMetrics(address string, logger l.Wrapper) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithFields(l.StringField("address", address)).Info("metrics listening")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithFields(l.ErrorField(err)).Error("metrics server stopped")
	}
}
