package ratecache

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"golang.org/x/sync/singleflight"
)

// Pool keeps the caches of recently used source instances. Concurrent requests for
// the same key share a single build.
type Pool[K comparable] struct {
	logger l.Wrapper

	caches *cache.Cache
	group  singleflight.Group
}

func NewPool[K comparable](expiration time.Duration, logger l.Wrapper) *Pool[K] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if expiration <= 0 {
		expiration = time.Minute
	}

	return &Pool[K]{
		logger: logger.WithFields(l.StringField(l.ClsKey, "ratePool")),
		caches: cache.New(expiration, expiration*2),
	}
}

func (impl *Pool[K]) Get(key string, build func() (*Cache[K], error)) (*Cache[K], error) {
	if c, ok := impl.lookup(key); ok {
		return c, nil
	}

	i, err, shared := impl.group.Do(key, func() (interface{}, error) {
		if c, ok := impl.lookup(key); ok {
			return c, nil
		}

		start := time.Now()

		c, err := build()
		if err != nil {
			return nil, err
		}

		impl.caches.Set(key, c, cache.DefaultExpiration)

		impl.logger.WithFields(l.StringField("key", key), l.StringField("cost", time.Since(start).String())).
			Debug("rate cache built")

		return c, nil
	})
	if err != nil {
		impl.logger.WithFields(l.StringField("key", key), l.ErrorField(err)).Error("build rate cache failed")

		return nil, err
	}

	if shared {
		impl.logger.WithFields(l.StringField("key", key)).Debug("rate cache build shared")
	}

	c, _ := i.(*Cache[K])

	return c, nil
}

// Put replaces the cache stored under key as a whole.
func (impl *Pool[K]) Put(key string, c *Cache[K]) {
	impl.caches.Set(key, c, cache.DefaultExpiration)
}

func (impl *Pool[K]) Drop(key string) {
	impl.caches.Delete(key)
}

func (impl *Pool[K]) Len() int {
	return impl.caches.ItemCount()
}

func (impl *Pool[K]) lookup(key string) (*Cache[K], bool) {
	i, ok := impl.caches.Get(key)
	if !ok {
		return nil, false
	}

	c, ok := i.(*Cache[K])

	return c, ok
}
