package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "hackathon-catalog.backend/internal/domain/errors"
	"hackathon-catalog.backend/pkg/logger"
)

// SkipReplayKey marks a response the idempotency middleware must not store,
// so that a retry of a failed mutation is attempted again.
const SkipReplayKey = "idempotency_skip_replay"

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps err onto its status and sends {"error": message}.
func Error(c *gin.Context, err error) {
	appErr := toAppError(err)
	if appErr.Status >= http.StatusInternalServerError {
		_ = c.Error(err)
		logger.Error(c.Request.Context(), "Request failed",
			zap.String("code", appErr.Code),
			zap.Error(err),
		)
	}
	c.JSON(appErr.Status, gin.H{"error": appErr.Error()})
}

// ErrorWithStatus sends an error response with a specific status and message
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Mutation reports the outcome of a write. A persistence failure is a normal
// {"success": false} answer; validation and lookup errors keep their status.
// extra is merged into the body of both outcomes.
func Mutation(c *gin.Context, err error, extra gin.H) {
	body := gin.H{"success": err == nil}
	for k, v := range extra {
		body[k] = v
	}
	if err == nil {
		c.JSON(http.StatusOK, body)
		return
	}
	if domainerrors.IsPersistence(err) {
		c.Set(SkipReplayKey, true)
		logger.Warn(c.Request.Context(), "Mutation not persisted", zap.Error(err))
		c.JSON(http.StatusOK, body)
		return
	}
	Error(c, err)
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr
	}
	switch {
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return domainerrors.Validation(err.Error())
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("recurso no encontrado")
	case errors.Is(err, domainerrors.ErrMethodNotAllowed):
		return domainerrors.MethodNotAllowed()
	case errors.Is(err, domainerrors.ErrPersistenceFailure):
		return domainerrors.PersistenceFailure("error al acceder a los datos", err)
	default:
		return domainerrors.InternalError(err)
	}
}
