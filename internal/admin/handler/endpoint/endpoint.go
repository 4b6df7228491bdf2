package endpoint

import (
	"net/http"

	"github.com/Meesho/BharatMLStack/model-mux/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HandlerV1 manages endpoint configs in the config store. Serving instances
// pick changes up through the config watch and rebuild the affected
// endpoint.
type HandlerV1 struct {
	configManager config.Manager
}

func NewHandlerV1(configManager config.Manager) *HandlerV1 {
	return &HandlerV1{configManager: configManager}
}

// List handles GET /api/v1/admin/endpoints.
func (h *HandlerV1) List(c *gin.Context) {
	configs, err := h.configManager.GetEndpointConfigs()
	if err != nil {
		log.Error().Err(err).Msg("failed to list endpoint configs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list endpoint configs"})
		return
	}
	c.JSON(http.StatusOK, configs)
}

// Get handles GET /api/v1/admin/endpoints/:model.
func (h *HandlerV1) Get(c *gin.Context) {
	model := c.Param("model")
	cfg, err := h.configManager.GetEndpointConfig(model)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint config for model '" + model + "' not found"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// Register handles POST /api/v1/admin/endpoints/:model.
func (h *HandlerV1) Register(c *gin.Context) {
	model := c.Param("model")
	cfg, ok := bindEndpointConfig(c, model)
	if !ok {
		return
	}
	if err := h.configManager.RegisterEndpoint(model, *cfg); err != nil {
		log.Error().Err(err).Str("model", model).Msg("failed to register endpoint")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cfg)
}

// Update handles PUT /api/v1/admin/endpoints/:model.
func (h *HandlerV1) Update(c *gin.Context) {
	model := c.Param("model")
	cfg, ok := bindEndpointConfig(c, model)
	if !ok {
		return
	}
	if err := h.configManager.UpdateEndpoint(model, *cfg); err != nil {
		log.Error().Err(err).Str("model", model).Msg("failed to update endpoint")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// Delete handles DELETE /api/v1/admin/endpoints/:model.
func (h *HandlerV1) Delete(c *gin.Context) {
	model := c.Param("model")
	if err := h.configManager.DeleteEndpoint(model); err != nil {
		log.Error().Err(err).Str("model", model).Msg("failed to delete endpoint")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "endpoint '" + model + "' deleted"})
}

func bindEndpointConfig(c *gin.Context, model string) (*config.EndpointConfig, bool) {
	var cfg config.EndpointConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endpoint config: " + err.Error()})
		return nil, false
	}
	cfg.ModelName = model
	if cfg.DefaultVersion == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "default_version is required"})
		return nil, false
	}
	return &cfg, true
}
