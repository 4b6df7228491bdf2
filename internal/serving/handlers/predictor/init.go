package predictor

import (
	"context"
	"sync"

	"github.com/Meesho/BharatMLStack/model-mux/internal/config"
	"github.com/Meesho/BharatMLStack/model-mux/internal/config/structs"
	"github.com/Meesho/BharatMLStack/model-mux/internal/repositories/registry"
	"github.com/rs/zerolog/log"
)

var (
	v1        *HandlerV1
	once      sync.Once
	appConfig structs.Configs
)

func InitV1Handler() *HandlerV1 {
	if v1 == nil {
		once.Do(func() {
			appConfig = structs.GetAppConfig().Configs
			v1 = NewHandlerV1(
				config.NewManager(config.DefaultVersion),
				registry.NewStore(registry.DefaultVersion),
				appConfig.PredictionLogEnabled,
			)
			if err := v1.LoadEndpoints(context.Background()); err != nil {
				log.Panic().Err(err).Msg("failed to build serving endpoints")
			}
			if err := v1.WatchEndpoints(); err != nil {
				log.Panic().Err(err).Msg("failed to watch endpoint configs")
			}
		})
	}
	return v1
}
