package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-backend/internal/anonymize"
	"github.com/mindease/mindease-backend/internal/emotions"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

type VentHandler struct {
	log    *logger.Logger
	engine *emotions.Engine
}

func NewVentHandler(log *logger.Logger, engine *emotions.Engine) *VentHandler {
	return &VentHandler{
		log:    log.With("handler", "VentHandler"),
		engine: engine,
	}
}

type addVentRequest struct {
	UserID   string         `json:"user_id"`
	CohortID string         `json:"cohort_id"`
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata"`
}

type addVentResponse struct {
	Success   bool   `json:"success"`
	EntryID   string `json:"entry_id"`
	Timestamp string `json:"timestamp"`
}

// POST /api/vent
// Stores one emotional entry. The raw user id is pseudonymized here;
// everything past this handler only sees the hash.
func (h *VentHandler) AddVent(c *gin.Context) {
	var req addVentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if strings.TrimSpace(req.UserID) == "" ||
		strings.TrimSpace(req.CohortID) == "" ||
		strings.TrimSpace(req.Text) == "" {
		RespondError(c, http.StatusBadRequest, "invalid_request",
			fmt.Errorf("missing required fields: user_id, cohort_id, text"))
		return
	}

	pseudonym := anonymize.UserID(req.UserID)
	entryID, err := h.engine.Ingest(c.Request.Context(), pseudonym, req.CohortID, req.Text, req.Metadata)
	if err != nil {
		h.log.Error("Vent ingest failed", "cohort_id", req.CohortID, "error", err.Error())
		respondEngineError(c, err)
		return
	}

	RespondOK(c, addVentResponse{
		Success:   true,
		EntryID:   entryID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
