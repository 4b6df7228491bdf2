package endpoint

import (
	"sync"

	"github.com/Meesho/BharatMLStack/model-mux/internal/config"
)

var (
	v1   *HandlerV1
	once sync.Once
)

func InitV1Handler() *HandlerV1 {
	if v1 == nil {
		once.Do(func() {
			v1 = NewHandlerV1(config.NewManager(config.DefaultVersion))
		})
	}
	return v1
}
