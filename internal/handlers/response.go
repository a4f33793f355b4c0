package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-backend/internal/emotions"
	"github.com/mindease/mindease-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// respondEngineError maps the engine error taxonomy onto HTTP statuses.
func respondEngineError(c *gin.Context, err error) {
	code := emotions.CodeOf(err)

	status := http.StatusInternalServerError
	switch code {
	case emotions.ErrorUnknownEmotion, emotions.ErrorInvalidArgument:
		status = http.StatusBadRequest
	case emotions.ErrorEmbeddingUnavailable:
		status = http.StatusBadGateway
	case emotions.ErrorStorageUnavailable:
		status = http.StatusServiceUnavailable
	case "":
		code = "internal"
	}

	apiErr := apierr.New(status, string(code), err)
	RespondError(c, apiErr.Status, apiErr.Code, apiErr.Err)
}
