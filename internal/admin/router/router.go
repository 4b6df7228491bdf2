package router

import (
	"github.com/Meesho/BharatMLStack/model-mux/internal/admin/handler/endpoint"
	"github.com/Meesho/BharatMLStack/model-mux/pkg/httpframework"
)

func Init() {
	handler := endpoint.InitV1Handler()
	group := httpframework.Instance().Group("/api/v1/admin/endpoints")
	group.GET("", handler.List)
	group.GET("/:model", handler.Get)
	group.POST("/:model", handler.Register)
	group.PUT("/:model", handler.Update)
	group.DELETE("/:model", handler.Delete)
}
