package predictor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Meesho/BharatMLStack/model-mux/internal/config"
	"github.com/Meesho/BharatMLStack/model-mux/internal/multiplexer"
	"github.com/Meesho/BharatMLStack/model-mux/internal/repositories/registry"
	"github.com/Meesho/BharatMLStack/model-mux/internal/serving/endpoint"
	httpHelper "github.com/Meesho/BharatMLStack/model-mux/pkg/api/http"
	"github.com/Meesho/BharatMLStack/model-mux/pkg/ds"
	"github.com/Meesho/BharatMLStack/model-mux/pkg/metric"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type HandlerV1 struct {
	configManager        config.Manager
	store                registry.Store
	endpoints            *ds.SyncMap[string, *endpoint.Endpoint]
	predictionLogEnabled bool
}

func NewHandlerV1(configManager config.Manager, store registry.Store, predictionLogEnabled bool) *HandlerV1 {
	return &HandlerV1{
		configManager:        configManager,
		store:                store,
		endpoints:            ds.NewSyncMap[string, *endpoint.Endpoint](),
		predictionLogEnabled: predictionLogEnabled,
	}
}

// LoadEndpoints builds an endpoint for every enabled model in the config
// store. A model whose default version cannot be resolved fails the whole
// load; serving must not start with a partially built surface.
func (h *HandlerV1) LoadEndpoints(ctx context.Context) error {
	configs, err := h.configManager.GetEndpointConfigs()
	if err != nil {
		return err
	}
	for model, cfg := range configs {
		if !cfg.Enabled {
			log.Info().Str("model", model).Msg("endpoint disabled, skipping")
			continue
		}
		applyDefaults(&cfg)
		ep, err := endpoint.Build(ctx, h.store, cfg)
		if err != nil {
			return err
		}
		h.endpoints.Set(model, ep)
	}
	return nil
}

// WatchEndpoints rebuilds endpoints as their configs change. A rebuild
// replaces the endpoint atomically; in-flight requests finish against the
// old one.
func (h *HandlerV1) WatchEndpoints() error {
	return h.configManager.RegisterWatchPathCallbackWithEvent(config.EndpointsPath, h.onEndpointEvent)
}

func (h *HandlerV1) onEndpointEvent(model, value, eventType string) error {
	if eventType == "DELETE" {
		h.dropEndpoint(model)
		return nil
	}
	var cfg config.EndpointConfig
	if err := json.Unmarshal([]byte(value), &cfg); err != nil {
		log.Error().Err(err).Str("model", model).Msg("malformed endpoint config update, keeping current endpoint")
		return err
	}
	if !cfg.Enabled {
		h.dropEndpoint(model)
		return nil
	}
	applyDefaults(&cfg)
	ep, err := endpoint.Build(context.Background(), h.store, cfg)
	if err != nil {
		log.Error().Err(err).Str("model", model).Msg("endpoint rebuild failed, keeping current endpoint")
		return err
	}
	h.endpoints.Set(model, ep)
	log.Info().Str("model", model).Str("defaultVersion", cfg.DefaultVersion).Msg("endpoint rebuilt")
	return nil
}

// applyDefaults fills unset tuning knobs from the app-level config. The
// multiplexer still guards with its own constants when both are unset.
func applyDefaults(cfg *config.EndpointConfig) {
	if cfg.CacheCapacity <= 0 {
		cfg.CacheCapacity = appConfig.DefaultCacheCapacity
	}
	if cfg.LoadTimeoutMs <= 0 {
		cfg.LoadTimeoutMs = appConfig.DefaultLoadTimeoutInMs
	}
}

func (h *HandlerV1) dropEndpoint(model string) {
	if ep, ok := h.endpoints.Get(model); ok {
		ep.Cache.Purge()
	}
	h.endpoints.Delete(model)
	log.Info().Str("model", model).Msg("endpoint removed")
}

// Serve handles POST /api/v1/serve/:model. The optional MODEL-VERSION header
// selects a non-default version; every version served through an endpoint
// answers in the endpoint's pinned contract.
func (h *HandlerV1) Serve(c *gin.Context) {
	start := time.Now()
	model := c.Param("model")

	ep, ok := h.endpoints.Get(model)
	if !ok {
		abortWithError(c, http.StatusNotFound, ErrCodeUnknownModel, "no serving endpoint for model '"+model+"'")
		return
	}
	version := ep.ResolveVersion(c.GetHeader(httpHelper.HeaderModelVersion))
	tags := metric.BuildTag(
		metric.NewTag(metric.TagModelName, model),
		metric.NewTag(metric.TagModelVersion, version),
	)
	metric.Incr("serve_request", tags)

	if !ep.Allow() {
		metric.Incr("serve_request_throttled", tags)
		abortWithError(c, http.StatusTooManyRequests, ErrCodeRateLimited, "rate limit exceeded for model '"+model+"'")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, ErrCodeValidationFailed, "failed to read request body")
		return
	}
	row, err := ep.Contract.ValidateRequest(body)
	if err != nil {
		metric.Incr("serve_request_4xx", tags)
		abortWithError(c, http.StatusBadRequest, ErrCodeValidationFailed, err.Error())
		return
	}

	handle, err := ep.Cache.Get(c.Request.Context(), version)
	if err != nil {
		h.abortOnVersionError(c, model, version, err, tags)
		return
	}

	outputs, err := handle.Predictor.Predict(c.Request.Context(), []map[string]json.RawMessage{row})
	if err != nil {
		metric.Incr("serve_request_5xx", tags)
		log.Error().Err(err).Str("model", model).Str("version", version).Msg("prediction failed")
		abortWithError(c, http.StatusInternalServerError, ErrCodeInternal, "prediction failed")
		return
	}
	records, err := ep.Contract.BuildResponse(outputs)
	if err != nil {
		metric.Incr("serve_request_5xx", tags)
		log.Error().Err(err).Str("model", model).Str("version", version).Msg("prediction output does not match contract")
		abortWithError(c, http.StatusInternalServerError, ErrCodeInternal, "prediction output does not match contract")
		return
	}
	if len(records) != 1 {
		metric.Incr("serve_request_5xx", tags)
		abortWithError(c, http.StatusInternalServerError, ErrCodeInternal, "prediction returned unexpected row count")
		return
	}

	h.logPrediction(ep, version, row, records[0], time.Since(start))
	metric.Timing("serve_request_latency", time.Since(start), tags)
	c.JSON(http.StatusOK, records)
}

// Contract handles GET /api/v1/serve/:model/contract.
func (h *HandlerV1) Contract(c *gin.Context) {
	model := c.Param("model")
	ep, ok := h.endpoints.Get(model)
	if !ok {
		abortWithError(c, http.StatusNotFound, ErrCodeUnknownModel, "no serving endpoint for model '"+model+"'")
		return
	}
	c.JSON(http.StatusOK, ContractResponse{
		ModelName:      ep.ModelName,
		DefaultVersion: ep.DefaultVersion,
		Inputs:         ep.Contract.Inputs,
		Outputs:        ep.Contract.Outputs,
	})
}

func (h *HandlerV1) abortOnVersionError(c *gin.Context, model, version string, err error, tags []string) {
	var mismatch *multiplexer.SignatureMismatchError
	var loadErr *registry.LoadError
	switch {
	case errors.As(err, &mismatch):
		metric.Incr("serve_request_4xx", tags)
		abortWithError(c, http.StatusConflict, ErrCodeVersionConflict, mismatch.Error())
	case errors.Is(err, registry.ErrModelNotFound):
		metric.Incr("serve_request_4xx", tags)
		abortWithError(c, http.StatusConflict, ErrCodeVersionConflict,
			"version '"+version+"' does not exist for model '"+model+"'")
	case errors.As(err, &loadErr):
		metric.Incr("serve_request_5xx", tags)
		log.Error().Err(err).Str("model", model).Str("version", version).Msg("version load failed")
		abortWithError(c, http.StatusInternalServerError, ErrCodeInternal, "failed to load model version")
	default:
		metric.Incr("serve_request_5xx", tags)
		log.Error().Err(err).Str("model", model).Str("version", version).Msg("version resolution failed")
		abortWithError(c, http.StatusInternalServerError, ErrCodeInternal, "failed to resolve model version")
	}
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}
