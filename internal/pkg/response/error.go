package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/apperror"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/logger"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a JSON error response.
// It checks if the error is an AppError to determine the status code.
// Anything else is logged and reported as a generic 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= http.StatusInternalServerError {
			logFault(c, err)
		}
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	logFault(c, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// FailureEnvelope is the error body of routes that answer with a success envelope.
type FailureEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Failure is Error for envelope routes. Faults are logged and reported with
// the route's own generic message.
func Failure(c *gin.Context, err error, message string) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
		c.JSON(appErr.Code, FailureEnvelope{Message: appErr.Message})
		return
	}

	logFault(c, err)
	c.JSON(http.StatusInternalServerError, FailureEnvelope{Message: message})
}

// Abort is Error for middleware: it also stops the handler chain.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// BadRequest reports a binding or validation failure.
func BadRequest(c *gin.Context, message string, err error) {
	body := gin.H{"error": message}
	if err != nil {
		body["details"] = err.Error()
	}
	c.JSON(http.StatusBadRequest, body)
}

func logFault(c *gin.Context, err error) {
	logger.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("request_id", c.GetString("requestID")).
		Msg("request failed")
}
