package middleware

import (
	"log/slog"
	"slices"

	"hotel-reservation/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// exposedHeaders lets browser clients read the created reservation URL and the request id.
var exposedHeaders = []string{"Location", requestIDHeader}

// NewCORSMiddleware disables CORS when no origin is configured instead of failing at startup.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	if len(cfg.AllowOrigins) == 0 {
		logger.Warn("CORS disabled: no allowed origins configured")
		return func(c *gin.Context) { c.Next() }
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    slices.Concat(exposedHeaders, cfg.ExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	logger.Info("CORS enabled", "allow_origins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}
