package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"task-manager-api/internal/core/database"
	"task-manager-api/internal/core/server"
	"task-manager-api/internal/repo"
	"task-manager-api/internal/service"
	"task-manager-api/internal/transport/http/handler"
	mdw "task-manager-api/internal/transport/http/middleware"
	resp "task-manager-api/internal/transport/http/response"
)

const Version = "1.0.0"

// AvailableRoutes is advertised by the 404 handler.
var AvailableRoutes = []string{
	"GET /",
	"GET /health",
	"GET /api/users",
	"POST /api/users",
	"GET /api/users/:id",
	"PUT /api/users/:id",
	"DELETE /api/users/:id",
	"GET /api/tasks",
	"POST /api/tasks",
	"GET /api/tasks/:id",
	"PUT /api/tasks/:id",
	"DELETE /api/tasks/:id",
	"GET /api/tasks/user/:userId",
}

type Options struct {
	Env          string // development | production | test
	MaxBodyBytes int64
	Timeout      time.Duration
	MaxInFlight  int64
	CORSOrigins  []string
}

func (o Options) production() bool { return o.Env == "production" }

func NewAPIEngine(l *zap.Logger, db *gorm.DB, opt Options) *gin.Engine {
	if opt.MaxBodyBytes <= 0 {
		opt.MaxBodyBytes = 10 << 20
	}
	prod := opt.production()

	r := server.NewRouter(l, server.Options{
		CORSOrigins:  opt.CORSOrigins,
		RequestIDKey: mdw.KeyRequestID,
		SkipPaths:    []string{"/health", "/metrics"},
	})

	r.RedirectTrailingSlash = false

	// the deadline also bounds the wait for a concurrency slot
	r.Use(
		mdw.RequestID(),
		mdw.Recovery(l, prod),
		mdw.Metrics(),
		mdw.Timeout(opt.Timeout),
		mdw.ConcurrencyLimit(opt.MaxInFlight),
		mdw.MaxBodyBytes(opt.MaxBodyBytes),
	)

	r.GET("/", welcome)
	r.GET("/health", health(db, opt.Env))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := repo.NewUserRepo(db)
	tasks := repo.NewTaskRepo(db)
	MountAPI(r.Group("/api"),
		handler.NewUserHandler(service.NewUserService(users), l, prod),
		handler.NewTaskHandler(service.NewTaskService(tasks, users), l, prod),
	)

	r.NoRoute(func(c *gin.Context) {
		body := resp.Error(http.StatusNotFound, "Route "+c.Request.URL.RequestURI()+" not found")
		body.AvailableRoutes = AvailableRoutes
		c.JSON(http.StatusNotFound, body)
	})
	return r
}

func welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome to Task Management API",
		"version": Version,
		"endpoints": gin.H{
			"users":  "/api/users",
			"tasks":  "/api/tasks",
			"health": "/health",
		},
	})
}

func health(db *gorm.DB, env string) gin.HandlerFunc {
	if env == "" {
		env = "development"
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status, msg, dbState := http.StatusOK, "Server is running properly", "up"
		if err := database.Ping(ctx, db); err != nil {
			status, msg, dbState = http.StatusServiceUnavailable, "Database is unreachable", "down"
		}
		c.JSON(status, gin.H{
			"success":     status == http.StatusOK,
			"message":     msg,
			"timestamp":   time.Now().UTC().Format(time.RFC3339Nano),
			"environment": env,
			"database":    dbState,
		})
	}
}
