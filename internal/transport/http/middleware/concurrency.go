package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	resp "task-manager-api/internal/transport/http/response"
)

// ConcurrencyLimit caps in-flight requests so the DB pool is not swamped.
// Waiters give up when their request context ends.
func ConcurrencyLimit(n int64) gin.HandlerFunc {
	if n <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	sem := semaphore.NewWeighted(n)
	return func(c *gin.Context) {
		if err := sem.Acquire(c.Request.Context(), 1); err != nil {
			resp.Abort(c, http.StatusServiceUnavailable, resp.MsgServerBusy)
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
