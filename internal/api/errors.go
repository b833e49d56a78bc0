package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gptsolver-backend-go/internal/core"
)

// statusForError maps a service error to its HTTP status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, core.ErrValidation), errors.Is(err, core.ErrNoOp):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrStale):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with {message}. Classified errors expose their own
// message; anything else is hidden behind a generic one. Server-side
// failures are always logged.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	status := statusForError(err)
	_ = c.Error(err)

	var appErr *core.AppError
	if !errors.As(err, &appErr) {
		logger.Error("Internal Server Error", zap.Error(err))
		c.JSON(status, ErrorResponse{Message: "An unexpected internal server error occurred."})
		return
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", zap.Error(err))
	}
	c.JSON(status, ErrorResponse{Message: appErr.Message})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}
