package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/StudioBellaVista/salon-admin/internal/audit"
	"github.com/StudioBellaVista/salon-admin/internal/backend"
	"github.com/StudioBellaVista/salon-admin/internal/cache"
	"github.com/StudioBellaVista/salon-admin/internal/config"
	"github.com/StudioBellaVista/salon-admin/internal/middleware"
	"github.com/StudioBellaVista/salon-admin/internal/routes"
)

func main() {

	// .env é opcional; em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "salon-admin").
		Logger()

	cfg := config.Load()

	// Redis quando configurado; memória local caso contrário.
	var store cache.Store
	if cfg.RedisURL != "" {
		redisStore, err := cache.NewRedis(cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		store = redisStore
	} else {
		store = cache.NewMemory()
	}

	gw := backend.New(backend.Options{
		BaseURL: cfg.BackendURL,
		Timeout: cfg.BackendTimeout,
		Store:   store,
		TTL:     cfg.CacheTTL,
		Logger:  logger,
	})

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if _, err := gw.Health(ctx); err != nil {
			c.JSON(http.StatusOK, gin.H{"status": "degraded", "backend": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": "ok"})
	})

	auditLogger := audit.New(logger)

	routes.RegisterRoutes(r, gw, cfg, auditLogger)

	logger.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
