package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-backend/internal/emotions"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

type CrisisHandler struct {
	log    *logger.Logger
	engine *emotions.Engine
}

func NewCrisisHandler(log *logger.Logger, engine *emotions.Engine) *CrisisHandler {
	return &CrisisHandler{
		log:    log.With("handler", "CrisisHandler"),
		engine: engine,
	}
}

type crisisCheckResponse struct {
	FlaggedUsers []emotions.CrisisFlag `json:"flagged_users"`
	Count        int                   `json:"count"`
	Timestamp    string                `json:"timestamp"`
}

// GET /api/crisis/check
// The only endpoint that surfaces per-user flags for human review.
// Accepts an optional `threshold` query param; `sentiment_threshold`
// is accepted for request compatibility but never evaluated.
func (h *CrisisHandler) CheckCrisisFlags(c *gin.Context) {
	threshold := emotions.DefaultCrisisThreshold
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_request",
				fmt.Errorf("invalid threshold: %q", raw))
			return
		}
		threshold = parsed
	}
	_ = c.Query("sentiment_threshold")

	flagged, err := h.engine.CheckCrisisFlags(c.Request.Context(), threshold)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	RespondOK(c, crisisCheckResponse{
		FlaggedUsers: flagged,
		Count:        len(flagged),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}
