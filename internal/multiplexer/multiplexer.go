package multiplexer

import (
	"container/list"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Meesho/BharatMLStack/model-mux/internal/repositories/registry"
	"github.com/Meesho/BharatMLStack/model-mux/internal/schema"
	"github.com/Meesho/BharatMLStack/model-mux/pkg/metric"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultCapacity bounds the number of concurrently loaded versions
	// per endpoint when no capacity is configured.
	DefaultCapacity = 2

	// DefaultLoadTimeout bounds one registry load.
	DefaultLoadTimeout = 30 * time.Second
)

// SignatureMismatchError reports a version whose declared schema is not
// compatible with the schema the endpoint was built against. The offending
// version is never cached.
type SignatureMismatchError struct {
	Version string
	Pinned  string
	Loaded  string
}

func (e *SignatureMismatchError) Error() string {
	return fmt.Sprintf("version '%s' schema %s does not match endpoint schema %s", e.Version, e.Loaded, e.Pinned)
}

type cacheEntry struct {
	version string
	handle  *registry.ModelVersion
}

// VersionCache is a bounded, concurrency-safe store of loaded model
// versions for one endpoint. Versions are loaded on demand through the
// registry, gated on compatibility with the pinned schema, and evicted
// least-recently-used once the capacity is reached.
type VersionCache struct {
	model       string
	capacity    int
	pinned      schema.Schema
	store       registry.Store
	loadTimeout time.Duration

	group   singleflight.Group
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // front is most recently used
}

func NewVersionCache(model string, pinned schema.Schema, store registry.Store, capacity int, loadTimeout time.Duration) *VersionCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if loadTimeout <= 0 {
		loadTimeout = DefaultLoadTimeout
	}
	return &VersionCache{
		model:       model,
		capacity:    capacity,
		pinned:      pinned,
		store:       store,
		loadTimeout: loadTimeout,
		entries:     make(map[string]*list.Element),
		order:       list.New(),
	}
}

// Get returns the loaded handle for a version, loading it on demand.
// Concurrent callers for the same missing version share one load and
// observe the same outcome. A caller whose context ends while a load is in
// flight detaches without cancelling the load for the remaining waiters.
func (c *VersionCache) Get(ctx context.Context, version string) (*registry.ModelVersion, error) {
	if handle := c.lookup(version); handle != nil {
		metric.Incr("version_cache_hit", metric.BuildTag(metric.NewTag(metric.TagModelName, c.model)))
		return handle, nil
	}
	metric.Incr("version_cache_miss", metric.BuildTag(metric.NewTag(metric.TagModelName, c.model)))

	ch := c.group.DoChan(version, func() (interface{}, error) {
		return c.load(version)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*registry.ModelVersion), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Len returns the number of live entries.
func (c *VersionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Contains reports whether a version is currently cached, without touching
// its recency.
func (c *VersionCache) Contains(version string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[version]
	return ok
}

// Purge discards every entry, releasing each handle. Used on endpoint
// teardown and rebuild.
func (c *VersionCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, el := range c.entries {
		releaseHandle(el.Value.(*cacheEntry).handle)
	}
	c.entries = make(map[string]*list.Element)
	c.order.Init()
}

// releaseHandle closes the predictor when the implementation holds
// releasable resources.
func releaseHandle(handle *registry.ModelVersion) {
	closer, ok := handle.Predictor.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		log.Warn().Err(err).Str("version", handle.Version).Msg("failed to close predictor")
	}
}

func (c *VersionCache) lookup(version string) *registry.ModelVersion {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.entries[version]
	if !ok {
		return nil
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).handle
}

func (c *VersionCache) load(version string) (*registry.ModelVersion, error) {
	// A racing caller may have populated the entry between the miss and
	// this load winning the single-flight slot.
	if handle := c.lookup(version); handle != nil {
		return handle, nil
	}

	// Detached context: the load's lifetime is bounded by the configured
	// timeout, not by any single waiter's request.
	ctx, cancel := context.WithTimeout(context.Background(), c.loadTimeout)
	defer cancel()

	startTime := time.Now()
	handle, err := c.store.Load(ctx, c.model, version)
	metric.Timing("version_load_latency", time.Since(startTime), metric.BuildTag(
		metric.NewTag(metric.TagModelName, c.model),
		metric.NewTag(metric.TagModelVersion, version),
	))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = &registry.LoadError{Model: c.model, Version: version, Err: err}
		}
		log.Error().Err(err).Str("model", c.model).Str("version", version).Msg("version load failed")
		return nil, err
	}

	if !c.pinned.Compatible(handle.Schema) {
		return nil, &SignatureMismatchError{
			Version: version,
			Pinned:  c.pinned.Describe(),
			Loaded:  handle.Schema.Describe(),
		}
	}

	c.insert(version, handle)
	return handle, nil
}

func (c *VersionCache) insert(version string, handle *registry.ModelVersion) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[version]; ok {
		el.Value.(*cacheEntry).handle = handle
		c.order.MoveToFront(el)
		return
	}
	// Evict before inserting so the count bound holds at all times and the
	// fresh entry can never be the eviction victim.
	for len(c.entries) >= c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		evicted := oldest.Value.(*cacheEntry)
		c.order.Remove(oldest)
		delete(c.entries, evicted.version)
		releaseHandle(evicted.handle)
		metric.Incr("version_cache_eviction", metric.BuildTag(
			metric.NewTag(metric.TagModelName, c.model),
			metric.NewTag(metric.TagModelVersion, evicted.version),
		))
		log.Debug().Str("model", c.model).Str("version", evicted.version).Msg("evicted least recently used version")
	}
	c.entries[version] = c.order.PushFront(&cacheEntry{version: version, handle: handle})
}
