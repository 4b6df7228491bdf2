package predictor

import (
	"encoding/json"
	"time"

	"github.com/Meesho/BharatMLStack/model-mux/internal/contract"
	"github.com/Meesho/BharatMLStack/model-mux/internal/serving/endpoint"
	"github.com/Meesho/BharatMLStack/model-mux/pkg/kafka"
	"github.com/rs/zerolog/log"
)

// predictionEvent is the record shipped to the prediction log topic for
// every successful serve call.
type predictionEvent struct {
	ModelName string                     `json:"model_name"`
	Version   string                     `json:"version"`
	Inputs    map[string]json.RawMessage `json:"inputs"`
	Outputs   contract.Record            `json:"outputs"`
	LatencyMs int64                      `json:"latency_ms"`
	ServedAt  int64                      `json:"served_at"`
}

// logPrediction ships the serve outcome to the endpoint's kafka topic,
// off the request path. Failures are logged and dropped.
func (h *HandlerV1) logPrediction(ep *endpoint.Endpoint, version string, inputs map[string]json.RawMessage, outputs contract.Record, latency time.Duration) {
	if !h.predictionLogEnabled || ep.KafkaLoggerId <= 0 {
		return
	}
	event := predictionEvent{
		ModelName: ep.ModelName,
		Version:   version,
		Inputs:    inputs,
		Outputs:   outputs,
		LatencyMs: latency.Milliseconds(),
		ServedAt:  time.Now().UnixMilli(),
	}
	go func() {
		payload, err := json.Marshal(event)
		if err != nil {
			log.Error().Err(err).Str("model", ep.ModelName).Msg("failed to marshal prediction event")
			return
		}
		key := ep.ModelName
		if err := kafka.SendAndForget(ep.KafkaLoggerId, []kafka.ProducerMessage{{Key: &key, Value: payload}}); err != nil {
			log.Error().Err(err).Str("model", ep.ModelName).Msg("failed to publish prediction event")
		}
	}()
}
