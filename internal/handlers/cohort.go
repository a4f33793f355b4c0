package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-backend/internal/emotions"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

type CohortHandler struct {
	log    *logger.Logger
	engine *emotions.Engine
}

func NewCohortHandler(log *logger.Logger, engine *emotions.Engine) *CohortHandler {
	return &CohortHandler{
		log:    log.With("handler", "CohortHandler"),
		engine: engine,
	}
}

// GET /api/cohort/:cohortId/health
// Aggregate emotional health report; an unknown cohort is a no_data
// report, not a 404.
func (h *CohortHandler) GetCohortHealth(c *gin.Context) {
	health, err := h.engine.AnalyzeCohort(c.Request.Context(), c.Param("cohortId"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	RespondOK(c, health)
}
