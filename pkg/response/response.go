// Package response renders the canonical success and error bodies
// described by the service's REST contract.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperr "gridgame/pkg/errors"
)

// ErrorBody is the shape of every non-2xx response.
type ErrorBody struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// JSON writes data as-is at status; success bodies are the resource
// itself, never wrapped in an envelope.
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Error maps err's Kind to an HTTP status and writes {message, details?}.
// errors not produced by pkg/errors are treated as internal (500).
func Error(c *gin.Context, err error) {
	status := httpStatus(apperr.KindOf(err))
	c.JSON(status, ErrorBody{Message: err.Error()})
}

// ErrorWithStatus writes an explicit status and message, bypassing the
// Kind-to-status mapping that Error applies.
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Message: message})
}

func httpStatus(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
