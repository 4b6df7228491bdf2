package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Meesho/BharatMLStack/model-mux/internal/schema"
)

// ErrModelNotFound is returned when the registry has no such model/version.
var ErrModelNotFound = errors.New("model version not found in registry")

// LoadError wraps a registry or model-initialization failure unrelated to
// schema compatibility. Eligible for caller-side retry.
type LoadError struct {
	Model   string
	Version string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load model '%s' version '%s': %v", e.Model, e.Version, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Predictor is the opaque predict capability of one loaded model version.
// Safe for concurrent use.
type Predictor interface {
	Predict(ctx context.Context, rows []map[string]json.RawMessage) ([]map[string]json.RawMessage, error)
}

// ModelVersion is one loaded, servable snapshot of a model.
type ModelVersion struct {
	Version   string
	Schema    schema.Schema
	Predictor Predictor
}

type Store interface {
	GetSchema(ctx context.Context, model, version string) (*schema.Schema, error)
	Load(ctx context.Context, model, version string) (*ModelVersion, error)
}
