package middleware

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	resp "task-manager-api/internal/transport/http/response"
)

// Recovery turns a panic into a 500 envelope. The panic value is only
// exposed to clients outside production.
func Recovery(l *zap.Logger, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if brokenPipe(rec) {
				l.Warn("client went away", zap.String("path", c.Request.URL.Path), zap.Any("error", rec))
				c.Abort()
				return
			}
			l.Error("panic recovered",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.String("rid", c.GetString(KeyRequestID)),
				zap.Any("error", rec),
				zap.Stack("stack"),
			)
			msg := resp.MsgSomethingWrong
			if !production {
				msg = fmt.Sprint(rec)
			}
			resp.Abort(c, http.StatusInternalServerError, msg)
		}()
		c.Next()
	}
}

func brokenPipe(rec any) bool {
	err, ok := rec.(error)
	if !ok {
		return false
	}
	var ne *net.OpError
	if !errors.As(err, &ne) {
		return false
	}
	var se *os.SyscallError
	if errors.As(ne, &se) {
		msg := strings.ToLower(se.Error())
		return strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer")
	}
	return false
}
