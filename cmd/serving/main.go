package main

import (
	"os"

	adminrouter "github.com/Meesho/BharatMLStack/model-mux/internal/admin/router"
	"github.com/Meesho/BharatMLStack/model-mux/internal/bootstrap"
	"github.com/Meesho/BharatMLStack/model-mux/internal/config/structs"
	"github.com/Meesho/BharatMLStack/model-mux/internal/server"
	"github.com/Meesho/BharatMLStack/model-mux/internal/server/api"
	"github.com/Meesho/BharatMLStack/model-mux/pkg/httpframework"
	"github.com/Meesho/BharatMLStack/model-mux/pkg/logger"
	"github.com/Meesho/BharatMLStack/model-mux/pkg/metric"
	"github.com/Meesho/BharatMLStack/model-mux/pkg/profiling"
	"github.com/Meesho/BharatMLStack/model-mux/pkg/tracing"
)

func main() {
	bootstrap.InitServing()
	appConfig := structs.GetAppConfig()
	logger.Init()
	metric.Init()
	profiling.Init()
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		tracing.Init()
	}
	httpframework.Init()
	api.Init()
	adminrouter.Init()
	server.InitServer(appConfig.Configs.Port)
}
