package api

import (
	"github.com/Meesho/BharatMLStack/model-mux/internal/serving/handlers/predictor"
	"github.com/Meesho/BharatMLStack/model-mux/pkg/httpframework"
)

const (
	healthCheckPath = "/health"
	servePath       = "/api/v1/serve/:model"
	contractPath    = "/api/v1/serve/:model/contract"
)

func Init() {
	handler := predictor.InitV1Handler()
	router := httpframework.Instance()
	router.GET(healthCheckPath, healthProvider)
	router.POST(servePath, handler.Serve)
	router.GET(contractPath, handler.Contract)
}
