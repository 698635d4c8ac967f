package response

import (
	"github.com/gin-gonic/gin"

	"task-manager-api/internal/domain"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success         bool             `json:"success"`
	Message         string           `json:"message"`
	Data            any              `json:"data,omitempty"`
	Errors          []string         `json:"errors,omitempty"`
	Pagination      *domain.PageMeta `json:"pagination,omitempty"`
	Count           *int             `json:"count,omitempty"`
	AvailableRoutes []string         `json:"availableRoutes,omitempty"`
}

func OK(msg string, data any) Envelope {
	return Envelope{Success: true, Message: msg, Data: data}
}

// Error builds a failure envelope; an empty msg falls back to the status text.
func Error(status int, msg string, errs ...string) Envelope {
	if msg == "" {
		msg = MessageFor(status)
	}
	return Envelope{Success: false, Message: msg, Errors: errs}
}

func JSON(c *gin.Context, status int, body Envelope) {
	c.JSON(status, body)
}

func Abort(c *gin.Context, status int, msg string, errs ...string) {
	c.AbortWithStatusJSON(status, Error(status, msg, errs...))
}
