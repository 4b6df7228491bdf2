package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/Meesho/BharatMLStack/model-mux/internal/config/structs"
	"github.com/Meesho/BharatMLStack/model-mux/internal/schema"
	httpHelper "github.com/Meesho/BharatMLStack/model-mux/pkg/api/http"
	"github.com/Meesho/BharatMLStack/model-mux/pkg/httpclient"
	"github.com/Meesho/BharatMLStack/model-mux/pkg/inmemorycache"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	envPrefix = "MODEL_REGISTRY"

	// SchemaCacheName is the named freecache holding registry schema responses.
	SchemaCacheName = "model_registry_schema_cache"

	schemaPathFormat     = "/api/v1/models/%s/versions/%s/schema"
	versionPathFormat    = "/api/v1/models/%s/versions/%s"
	invocationPathFormat = "/api/v1/models/%s/versions/%s/invocations"
)

var (
	store Store
	once  sync.Once
)

type V1 struct {
	client             *httpclient.HTTPClient
	host               string
	port               int
	schemaCache        inmemorycache.InMemoryCache
	schemaTtlInSeconds int
}

// NewV1Store creates a registry store with explicit collaborators.
// Used for testing.
func NewV1Store(client *httpclient.HTTPClient, host string, port int, schemaCache inmemorycache.InMemoryCache, schemaTtlInSeconds int) *V1 {
	return &V1{
		client:             client,
		host:               host,
		port:               port,
		schemaCache:        schemaCache,
		schemaTtlInSeconds: schemaTtlInSeconds,
	}
}

func initV1Store() Store {
	if store == nil {
		once.Do(func() {
			schemaCache, err := inmemorycache.InstanceByName(SchemaCacheName)
			if err != nil {
				log.Panic().Err(err).Msgf("schema cache '%s' not initialized", SchemaCacheName)
			}
			store = &V1{
				client:             httpclient.NewConn(envPrefix),
				host:               viper.GetString(envPrefix + httpHelper.Host),
				port:               viper.GetInt(envPrefix + httpHelper.Port),
				schemaCache:        schemaCache,
				schemaTtlInSeconds: structs.GetAppConfig().Configs.SchemaCacheTtlInSeconds,
			}
		})
	}
	return store
}

// GetSchema fetches the declared schema for one model version. Responses are
// cached with a TTL so endpoint rebuilds do not hammer the registry.
func (v *V1) GetSchema(ctx context.Context, model, version string) (*schema.Schema, error) {
	cacheKey := []byte("schema:" + model + ":" + version)
	if cached, err := v.schemaCache.Get(cacheKey); err == nil {
		var s schema.Schema
		if err := json.Unmarshal(cached, &s); err == nil {
			return &s, nil
		}
		log.Warn().Msgf("corrupt schema cache entry for %s:%s, refetching", model, version)
	}

	body, err := v.get(ctx, fmt.Sprintf(schemaPathFormat, model, version), model, version)
	if err != nil {
		return nil, err
	}
	var resp schemaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &LoadError{Model: model, Version: version, Err: err}
	}

	if raw, err := json.Marshal(resp.Schema); err == nil {
		if err := v.schemaCache.SetEx(cacheKey, raw, v.schemaTtlInSeconds); err != nil {
			log.Warn().Err(err).Msgf("failed to cache schema for %s:%s", model, version)
		}
	}
	return &resp.Schema, nil
}

// Load fetches the version's schema and a predict capability. The predict
// capability invokes the registry's scoring route over HTTP.
func (v *V1) Load(ctx context.Context, model, version string) (*ModelVersion, error) {
	body, err := v.get(ctx, fmt.Sprintf(versionPathFormat, model, version), model, version)
	if err != nil {
		return nil, err
	}
	var resp loadResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &LoadError{Model: model, Version: version, Err: err}
	}
	if resp.Status != modelStatusReady {
		return nil, &LoadError{Model: model, Version: version, Err: fmt.Errorf("model version status is '%s'", resp.Status)}
	}
	invocationPath := resp.InvocationPath
	if invocationPath == "" {
		invocationPath = fmt.Sprintf(invocationPathFormat, model, version)
	}
	return &ModelVersion{
		Version: version,
		Schema:  resp.Schema,
		Predictor: &remotePredictor{
			client: v.client,
			host:   v.host,
			port:   v.port,
			path:   invocationPath,
		},
	}, nil
}

func (v *V1) get(ctx context.Context, path, model, version string) ([]byte, error) {
	req, err := httpclient.NewHttpRequestBuilder().
		WithContext(ctx).
		WithHost(v.host).
		WithPort(v.port).
		WithPath(path).
		WithMethod(http.MethodGet).
		BuildContentTypeJson()
	if err != nil {
		return nil, &LoadError{Model: model, Version: version, Err: err}
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return nil, &LoadError{Model: model, Version: version, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrModelNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &LoadError{Model: model, Version: version, Err: fmt.Errorf("registry returned status %d", resp.StatusCode)}
	}
	return io.ReadAll(resp.Body)
}

// remotePredictor scores a batch of validated inputs against the registry's
// scoring route for one model version.
type remotePredictor struct {
	client *httpclient.HTTPClient
	host   string
	port   int
	path   string
}

func (p *remotePredictor) Predict(ctx context.Context, rows []map[string]json.RawMessage) ([]map[string]json.RawMessage, error) {
	req, err := httpclient.NewHttpRequestBuilder().
		WithContext(ctx).
		WithHost(p.host).
		WithPort(p.port).
		WithPath(p.path).
		WithMethod(http.MethodPost).
		WithBody(predictionRequest{Inputs: rows}).
		BuildContentTypeJson()
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scoring route returned status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var out predictionResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse scoring response: %w", err)
	}
	return out.Outputs, nil
}
