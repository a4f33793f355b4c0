package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-backend/internal/emotions"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

type StatsHandler struct {
	log    *logger.Logger
	engine *emotions.Engine
}

func NewStatsHandler(log *logger.Logger, engine *emotions.Engine) *StatsHandler {
	return &StatsHandler{
		log:    log.With("handler", "StatsHandler"),
		engine: engine,
	}
}

type healthCheckResponse struct {
	Status    string              `json:"status"`
	Database  emotions.StoreStats `json:"database"`
	Timestamp string              `json:"timestamp"`
}

// GET /api/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.engine.Stats(c.Request.Context())
	if err != nil {
		respondEngineError(c, err)
		return
	}
	RespondOK(c, stats)
}

// GET /api/health
func (h *StatsHandler) HealthCheck(c *gin.Context) {
	stats, err := h.engine.Stats(c.Request.Context())
	if err != nil {
		respondEngineError(c, err)
		return
	}
	RespondOK(c, healthCheckResponse{
		Status:    "healthy",
		Database:  stats,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
