package registry

import (
	"context"
	"encoding/json"

	"github.com/Meesho/BharatMLStack/model-mux/internal/schema"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

// Ensure MockStore implements Store interface
var _ Store = (*MockStore)(nil)

func (m *MockStore) GetSchema(ctx context.Context, model, version string) (*schema.Schema, error) {
	args := m.Called(ctx, model, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schema.Schema), args.Error(1)
}

func (m *MockStore) Load(ctx context.Context, model, version string) (*ModelVersion, error) {
	args := m.Called(ctx, model, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ModelVersion), args.Error(1)
}

type MockPredictor struct {
	mock.Mock
}

var _ Predictor = (*MockPredictor)(nil)

func (m *MockPredictor) Predict(ctx context.Context, rows []map[string]json.RawMessage) ([]map[string]json.RawMessage, error) {
	args := m.Called(ctx, rows)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]json.RawMessage), args.Error(1)
}
