package registry

import (
	"encoding/json"

	"github.com/Meesho/BharatMLStack/model-mux/internal/schema"
)

const (
	modelStatusReady = "ready"
)

type schemaResponse struct {
	Schema schema.Schema `json:"schema"`
}

type loadResponse struct {
	Version        string        `json:"version"`
	Status         string        `json:"status"`
	Schema         schema.Schema `json:"schema"`
	InvocationPath string        `json:"invocation_path"`
}

type predictionRequest struct {
	Inputs []map[string]json.RawMessage `json:"inputs"`
}

type predictionResponse struct {
	Outputs []map[string]json.RawMessage `json:"outputs"`
}
