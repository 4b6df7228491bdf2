package config

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/Meesho/BharatMLStack/model-mux/pkg/etcd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleEndpoint() EndpointConfig {
	return EndpointConfig{
		ModelName:      "ranker",
		DefaultVersion: "v3",
		CacheCapacity:  4,
		LoadTimeoutMs:  2000,
		RateLimitRPS:   100,
		RateLimitBurst: 200,
		KafkaLoggerId:  7,
		Enabled:        true,
	}
}

func TestGetEndpointConfigs(t *testing.T) {
	t.Run("should return all endpoint configs", func(t *testing.T) {
		mockEtcd := new(etcd.MockEtcd)
		endpoint := sampleEndpoint()
		raw, _ := json.Marshal(endpoint)
		mockEtcd.On("GetValues", EndpointsPath).Return(map[string]string{"ranker": string(raw)}, nil)

		mgr := NewMuxManager(mockEtcd)
		endpoints, err := mgr.GetEndpointConfigs()

		assert.NoError(t, err)
		assert.Len(t, endpoints, 1)
		assert.Equal(t, endpoint, endpoints["ranker"])
		mockEtcd.AssertExpectations(t)
	})

	t.Run("should propagate etcd error", func(t *testing.T) {
		mockEtcd := new(etcd.MockEtcd)
		mockEtcd.On("GetValues", EndpointsPath).Return(nil, errors.New("etcd down"))

		mgr := NewMuxManager(mockEtcd)
		endpoints, err := mgr.GetEndpointConfigs()

		assert.Error(t, err)
		assert.Nil(t, endpoints)
	})

	t.Run("should fail on malformed endpoint json", func(t *testing.T) {
		mockEtcd := new(etcd.MockEtcd)
		mockEtcd.On("GetValues", EndpointsPath).Return(map[string]string{"ranker": "{not-json"}, nil)

		mgr := NewMuxManager(mockEtcd)
		endpoints, err := mgr.GetEndpointConfigs()

		assert.Error(t, err)
		assert.Nil(t, endpoints)
		assert.Contains(t, err.Error(), "ranker")
	})
}

func TestGetEndpointConfig(t *testing.T) {
	t.Run("should return config for model", func(t *testing.T) {
		mockEtcd := new(etcd.MockEtcd)
		endpoint := sampleEndpoint()
		raw, _ := json.Marshal(endpoint)
		mockEtcd.On("GetValue", EndpointsPath+"/ranker").Return(string(raw), nil)

		mgr := NewMuxManager(mockEtcd)
		got, err := mgr.GetEndpointConfig("ranker")

		assert.NoError(t, err)
		assert.Equal(t, &endpoint, got)
	})

	t.Run("should error for unknown model", func(t *testing.T) {
		mockEtcd := new(etcd.MockEtcd)
		mockEtcd.On("GetValue", EndpointsPath+"/ghost").Return("", errors.New("no value found"))

		mgr := NewMuxManager(mockEtcd)
		got, err := mgr.GetEndpointConfig("ghost")

		assert.Error(t, err)
		assert.Nil(t, got)
		assert.Contains(t, err.Error(), "ghost")
	})
}

func TestRegisterEndpoint(t *testing.T) {
	mockEtcd := new(etcd.MockEtcd)
	endpoint := sampleEndpoint()
	raw, _ := json.Marshal(endpoint)
	mockEtcd.On("CreateNode", EndpointsPath+"/ranker", string(raw)).Return(nil)

	mgr := NewMuxManager(mockEtcd)
	err := mgr.RegisterEndpoint("ranker", endpoint)

	assert.NoError(t, err)
	mockEtcd.AssertExpectations(t)
}

func TestUpdateEndpoint(t *testing.T) {
	mockEtcd := new(etcd.MockEtcd)
	endpoint := sampleEndpoint()
	raw, _ := json.Marshal(endpoint)
	mockEtcd.On("SetValue", EndpointsPath+"/ranker", string(raw)).Return(nil)

	mgr := NewMuxManager(mockEtcd)
	err := mgr.UpdateEndpoint("ranker", endpoint)

	assert.NoError(t, err)
	mockEtcd.AssertExpectations(t)
}

func TestDeleteEndpoint(t *testing.T) {
	mockEtcd := new(etcd.MockEtcd)
	mockEtcd.On("DeleteNode", EndpointsPath+"/ranker").Return(nil)

	mgr := NewMuxManager(mockEtcd)
	err := mgr.DeleteEndpoint("ranker")

	assert.NoError(t, err)
	mockEtcd.AssertExpectations(t)
}

func TestRegisterWatchPathCallbackWithEvent(t *testing.T) {
	mockEtcd := new(etcd.MockEtcd)
	mockEtcd.On("RegisterWatchPathCallbackWithEvent", EndpointsPath, mock.Anything).Return(nil)

	mgr := NewMuxManager(mockEtcd)
	err := mgr.RegisterWatchPathCallbackWithEvent(EndpointsPath, func(key, value, eventType string) error { return nil })

	assert.NoError(t, err)
	mockEtcd.AssertExpectations(t)
}
