package main

import (
	"log/slog"
	"time"

	"osiris-dashboard/internal/config"
	"osiris-dashboard/internal/httpapi"
	"osiris-dashboard/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// newRouter applies middleware and registers routes.
// Keep this file free of business logic. Handlers delegate to internal modules.
func newRouter(log *slog.Logger, cfg config.Config, h httpapi.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))
	r.Use(cors.New(corsConfig(cfg.HTTP.AllowOrigins)))

	httpapi.Register(r, h)
	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-Id", "X-Actor"},
		ExposeHeaders: []string{"X-Request-Id", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}
