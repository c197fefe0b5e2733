package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/jobshop/internal/domain/submission"
	apperr "github.com/honeycarbs/jobshop/internal/errors"
)

var statusByType = map[apperr.ErrorType]int{
	apperr.ErrTypeNotFound:     http.StatusNotFound,
	apperr.ErrTypeInvalidInput: http.StatusBadRequest,
	apperr.ErrTypeConflict:     http.StatusConflict,
	apperr.ErrTypeUnavailable:  http.StatusServiceUnavailable,
	apperr.ErrTypeInternal:     http.StatusInternalServerError,
}

// writeError renders err as a JSON body with a status derived from its
// domain type. Internal details are never echoed to clients.
func (h *Handler) writeError(c *gin.Context, err error) {
	errType := apperr.TypeOf(err)
	status := statusByType[errType]

	body := gin.H{
		"type":       errType,
		"request_id": c.GetString(requestIDKey),
	}

	var de *apperr.DomainError
	switch {
	case status >= http.StatusInternalServerError:
		body["error"] = http.StatusText(status)
		_ = c.Error(err)
	case errors.As(err, &de):
		body["error"] = de.Message
	default:
		body["error"] = err.Error()
	}

	var verrs submission.ValidationErrors
	if errors.As(err, &verrs) {
		body["details"] = verrs
	}

	c.AbortWithStatusJSON(status, body)
}

func (h *Handler) badRequest(c *gin.Context, message string, err error) {
	h.writeError(c, apperr.InvalidInput(message, err))
}
