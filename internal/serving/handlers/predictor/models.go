package predictor

import (
	"github.com/Meesho/BharatMLStack/model-mux/internal/schema"
)

const (
	ErrCodeUnknownModel     = "UNKNOWN_MODEL"
	ErrCodeVersionConflict  = "VERSION_CONFLICT"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeRateLimited      = "RATE_LIMITED"
	ErrCodeInternal         = "INTERNAL"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ContractResponse describes the serving surface of one endpoint. The field
// lists mirror the schema the endpoint was pinned to at build time.
type ContractResponse struct {
	ModelName      string             `json:"model_name"`
	DefaultVersion string             `json:"default_version"`
	Inputs         []schema.FieldSpec `json:"inputs"`
	Outputs        []schema.FieldSpec `json:"outputs"`
}
