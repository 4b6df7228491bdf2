package endpoint

import (
	"context"
	"fmt"
	"time"

	"github.com/Meesho/BharatMLStack/model-mux/internal/config"
	"github.com/Meesho/BharatMLStack/model-mux/internal/contract"
	"github.com/Meesho/BharatMLStack/model-mux/internal/multiplexer"
	"github.com/Meesho/BharatMLStack/model-mux/internal/repositories/registry"
	"github.com/Meesho/BharatMLStack/model-mux/internal/schema"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Endpoint is the immutable descriptor of one served model. Its external
// contract is pinned to the default version's schema at build time and never
// changes, even as newer incompatible versions get registered.
type Endpoint struct {
	ModelName      string
	DefaultVersion string
	Pinned         schema.Schema
	Contract       *contract.Contract
	Cache          *multiplexer.VersionCache
	KafkaLoggerId  int
	limiter        *rate.Limiter
}

// Build fetches the default version's schema, translates it into the serving
// contract and wires a fresh empty version cache. The default version's
// predict capability is not loaded here; the cache loads it on first use.
func Build(ctx context.Context, store registry.Store, cfg config.EndpointConfig) (*Endpoint, error) {
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("endpoint config has empty model name")
	}
	if cfg.DefaultVersion == "" {
		return nil, fmt.Errorf("endpoint config for model '%s' has empty default version", cfg.ModelName)
	}

	pinned, err := store.GetSchema(ctx, cfg.ModelName, cfg.DefaultVersion)
	if err != nil {
		return nil, err
	}
	serveContract, err := contract.Translate(*pinned)
	if err != nil {
		return nil, err
	}

	cache := multiplexer.NewVersionCache(
		cfg.ModelName,
		*pinned,
		store,
		cfg.CacheCapacity,
		time.Duration(cfg.LoadTimeoutMs)*time.Millisecond,
	)

	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		burst := cfg.RateLimitBurst
		if burst <= 0 {
			burst = int(cfg.RateLimitRPS)
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), burst)
	}

	log.Info().
		Str("model", cfg.ModelName).
		Str("defaultVersion", cfg.DefaultVersion).
		Int("cacheCapacity", cfg.CacheCapacity).
		Msg("endpoint built")

	return &Endpoint{
		ModelName:      cfg.ModelName,
		DefaultVersion: cfg.DefaultVersion,
		Pinned:         *pinned,
		Contract:       serveContract,
		Cache:          cache,
		KafkaLoggerId:  cfg.KafkaLoggerId,
		limiter:        limiter,
	}, nil
}

// ResolveVersion maps the optional requested version onto the effective one.
// Absent or empty selects the default.
func (e *Endpoint) ResolveVersion(requested string) string {
	if requested == "" {
		return e.DefaultVersion
	}
	return requested
}

// Allow reports whether one more request may proceed under the endpoint's
// rate limit. Endpoints without a configured limit always allow.
func (e *Endpoint) Allow() bool {
	if e.limiter == nil {
		return true
	}
	return e.limiter.Allow()
}
