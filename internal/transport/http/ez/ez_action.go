package ez

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"task-manager-api/internal/domain"
	resp "task-manager-api/internal/transport/http/response"
)

// EZ registers actions on a router group and renders their outcome.
type EZ struct {
	g          *gin.RouterGroup
	log        *zap.Logger
	production bool
}

func New(g *gin.RouterGroup, l *zap.Logger, production bool) EZ {
	if l == nil {
		l = zap.NewNop()
	}
	return EZ{g: g, log: l, production: production}
}

// Reply is what a handler hands back on success.
type Reply struct {
	Data       any
	Pagination *domain.PageMeta
	Count      *int
}

// Action describes one endpoint: I is the bound, validated input.
type Action[I any] struct {
	Method  string // GET | POST | PUT | DELETE
	Path    string
	Status  int    // success status, 200 when zero
	Message string // success message
	Failure string // message for unexpected errors
	Bind    func(c *gin.Context) (I, error)
	Handler func(ctx context.Context, in I) (Reply, error)
}

func RegisterAction[I any](e EZ, a Action[I]) {
	status := a.Status
	if status == 0 {
		status = http.StatusOK
	}

	h := func(c *gin.Context) {
		// 1) bind and validate
		var in I
		if a.Bind != nil {
			v, err := a.Bind(c)
			if err != nil {
				e.fail(c, err, a.Failure)
				return
			}
			in = v
		}

		// 2) run
		out, err := a.Handler(c.Request.Context(), in)
		if err != nil {
			e.fail(c, err, a.Failure)
			return
		}

		// 3) render
		body := resp.OK(a.Message, out.Data)
		body.Pagination = out.Pagination
		body.Count = out.Count
		c.JSON(status, body)
	}

	method := strings.ToUpper(a.Method)
	switch method {
	case http.MethodGet, http.MethodPut, http.MethodDelete:
	default:
		method = http.MethodPost
	}
	// a trailing slash is served, not redirected
	e.g.Handle(method, a.Path, h)
	e.g.Handle(method, a.Path+"/", h)
}

// fail maps err onto a status code and envelope.
func (e EZ) fail(c *gin.Context, err error, failure string) {
	var de *domain.Error
	switch {
	case errors.As(err, &de) && de.Kind != domain.KindInternal:
		c.JSON(statusOf(de.Kind), resp.Error(statusOf(de.Kind), de.Message, de.Errors...))
		return
	case errors.Is(err, context.DeadlineExceeded):
		e.log.Warn("request deadline exceeded",
			zap.String("path", c.FullPath()), zap.Error(err))
		resp.Abort(c, http.StatusGatewayTimeout, resp.MsgTimeout)
		return
	}

	msg := failure
	if de != nil && de.Message != "" {
		msg = de.Message
	}
	if msg == "" {
		msg = resp.MsgSomethingWrong
		if !e.production {
			msg = err.Error()
		}
	}
	e.log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("message", msg),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, resp.Error(http.StatusInternalServerError, msg))
}

func statusOf(k domain.Kind) int {
	switch k {
	case domain.KindValidation, domain.KindBadRequest:
		return http.StatusBadRequest
	case domain.KindTooLarge:
		return http.StatusRequestEntityTooLarge
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// BindJSONObject decodes the body into a generic object. An absent body is
// an empty object.
func BindJSONObject(c *gin.Context) (map[string]any, error) {
	raw := map[string]any{}
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return raw, nil
	}
	if err := c.ShouldBindJSON(&raw); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return map[string]any{}, nil
		case errors.As(err, &tooLarge):
			return nil, domain.TooLarge(resp.MsgBodyTooLarge)
		default:
			return nil, domain.BadRequest(resp.MsgInvalidJSON)
		}
	}
	if raw == nil { // literal null
		raw = map[string]any{}
	}
	return raw, nil
}
