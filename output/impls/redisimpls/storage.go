package redisimpls

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libhawking/catalog"
	"github.com/sgostarter/libhawking/output"
	"github.com/spf13/cast"
)

func NewRedisStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) output.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "spectraStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &spectraStorage{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type spectraStorage struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *spectraStorage) runKey(runID uint64) string {
	return fmt.Sprintf("%s:spectra:%d", impl.preKey, runID)
}

func (impl *spectraStorage) runsKey() string {
	return impl.preKey + ":runs"
}

func (impl *spectraStorage) SaveSpectrum(r *output.Record) error {
	if r == nil {
		return commerr.ErrInvalidArgument
	}

	d, err := json.Marshal(r)
	if err != nil {
		return err
	}

	_, err = impl.redisCli.TxPipelined(context.Background(), func(pipe redis.Pipeliner) error {
		pipe.HSet(context.Background(), impl.runKey(r.RunID), r.Field(), d)
		pipe.ZAddNX(context.Background(), impl.runsKey(), &redis.Z{
			Score:  float64(r.CreateAt),
			Member: r.RunID,
		})

		return nil
	})

	return err
}

func (impl *spectraStorage) GetSpectrum(runID uint64, holeKey string, target catalog.Particle) (r *output.Record, err error) {
	d, err := impl.redisCli.HGet(context.Background(), impl.runKey(runID), output.FieldName(holeKey, target)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commerr.ErrNotFound
		}

		return
	}

	r = &output.Record{}

	err = json.Unmarshal(d, r)

	return
}

func (impl *spectraStorage) ListSpectra(runID uint64) (rs []*output.Record, err error) {
	m, err := impl.redisCli.HGetAll(context.Background(), impl.runKey(runID)).Result()
	if err != nil {
		return
	}

	for field, v := range m {
		r := &output.Record{}

		if e := json.Unmarshal([]byte(v), r); e != nil {
			impl.logger.WithFields(l.ErrorField(e), l.StringField("field", field)).Error("invalid spectrum record")

			continue
		}

		rs = append(rs, r)
	}

	output.SortRecords(rs)

	return
}

func (impl *spectraStorage) ListRuns() (runIDs []uint64, err error) {
	members, err := impl.redisCli.ZRange(context.Background(), impl.runsKey(), 0, -1).Result()
	if err != nil {
		return
	}

	for _, member := range members {
		runID, e := cast.ToUint64E(member)
		if e != nil {
			impl.logger.WithFields(l.ErrorField(e), l.StringField("member", member)).Error("invalid run id")

			continue
		}

		runIDs = append(runIDs, runID)
	}

	sort.Slice(runIDs, func(i, j int) bool {
		return runIDs[i] < runIDs[j]
	})

	return
}
