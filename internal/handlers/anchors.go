package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-backend/internal/emotions"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

type AnchorsHandler struct {
	log    *logger.Logger
	engine *emotions.Engine
}

func NewAnchorsHandler(log *logger.Logger, engine *emotions.Engine) *AnchorsHandler {
	return &AnchorsHandler{
		log:    log.With("handler", "AnchorsHandler"),
		engine: engine,
	}
}

// GET /api/emotions/anchors
func (h *AnchorsHandler) GetAnchors(c *gin.Context) {
	RespondOK(c, h.engine.ListAnchors())
}
