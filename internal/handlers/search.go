package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-backend/internal/emotions"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

type SearchHandler struct {
	log    *logger.Logger
	engine *emotions.Engine
}

func NewSearchHandler(log *logger.Logger, engine *emotions.Engine) *SearchHandler {
	return &SearchHandler{
		log:    log.With("handler", "SearchHandler"),
		engine: engine,
	}
}

type searchEmotionRequest struct {
	Emotion   string   `json:"emotion"`
	Threshold *float64 `json:"threshold"`
	TopK      *int     `json:"top_k"`
}

type searchEmotionResponse struct {
	Emotion   string                  `json:"emotion"`
	Threshold float64                 `json:"threshold"`
	Matches   []emotions.EmotionMatch `json:"matches"`
	Count     int                     `json:"count"`
}

// POST /api/search/emotion
// Omitted fields fall back to the anxiety anchor, threshold 0.8, top 10.
func (h *SearchHandler) SearchByEmotion(c *gin.Context) {
	var req searchEmotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	emotion := req.Emotion
	if emotion == "" {
		emotion = "anxiety"
	}
	threshold := emotions.DefaultSearchThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}
	topK := emotions.DefaultSearchTopK
	if req.TopK != nil {
		topK = *req.TopK
	}

	matches, err := h.engine.SearchByEmotion(c.Request.Context(), emotion, threshold, topK)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	RespondOK(c, searchEmotionResponse{
		Emotion:   emotion,
		Threshold: threshold,
		Matches:   matches,
		Count:     len(matches),
	})
}
