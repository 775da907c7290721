package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Natalia-Nic/construction-company-api/internal/config"
	dbpkg "github.com/Natalia-Nic/construction-company-api/internal/db"
	"github.com/Natalia-Nic/construction-company-api/internal/logger"
	"github.com/Natalia-Nic/construction-company-api/internal/middleware"
	"github.com/Natalia-Nic/construction-company-api/internal/routes"
	"github.com/Natalia-Nic/construction-company-api/internal/token"
)

func main() {

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load(context.Background())
	if err != nil {
		logger.Init("info", true).Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(cfg.LogLevel, cfg.IsDevelopment())

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db := dbpkg.MustOpen(cfg.DatabaseURL)
	if err := dbpkg.Seed(db); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	issuer := token.NewIssuer(cfg.JWT)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, issuer)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
