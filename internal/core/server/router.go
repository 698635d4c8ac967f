package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DevOrigins are allowed when no origins are configured.
var DevOrigins = []string{"http://localhost:3000", "http://localhost:3001", "http://127.0.0.1:3000"}

type Options struct {
	CORSOrigins  []string
	RequestIDKey string   // context key copied into access log entries
	SkipPaths    []string // not access-logged
}

func NewRouter(l *zap.Logger, opt Options) *gin.Engine {
	r := gin.New()
	r.Use(ginzap.GinzapWithConfig(l, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  opt.SkipPaths,
		Context: func(c *gin.Context) []zapcore.Field {
			if opt.RequestIDKey == "" {
				return nil
			}
			return []zapcore.Field{zap.String("rid", c.GetString(opt.RequestIDKey))}
		},
	}))
	r.Use(cors.New(CORSConfig(opt.CORSOrigins)))
	return r
}

func CORSConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = DevOrigins
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func BuildServer(addr string, handler http.Handler, rt, wt, it time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       rt,
		ReadHeaderTimeout: rt,
		WriteTimeout:      wt,
		IdleTimeout:       it,
		MaxHeaderBytes:    1 << 20, // 1MB
	}
}

func Addr(host string, port int) string { return fmt.Sprintf("%s:%d", host, port) }
