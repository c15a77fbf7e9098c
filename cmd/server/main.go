package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fredao/sales-insights-api/internal/api"
	"github.com/fredao/sales-insights-api/internal/catalog"
	"github.com/fredao/sales-insights-api/internal/config"
	"github.com/fredao/sales-insights-api/internal/persona"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cat, err := catalog.Load()
	if err != nil {
		logger.Fatal("Failed to load reference catalog", zap.Error(err))
	}

	engine := persona.NewEngine(cat)
	handler := api.NewHandler(cat, engine, logger, cfg.WinRate)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	router := gin.New()
	router.Use(api.RequestLogger(logger), gin.Recovery())

	api.SetupRoutes(router, handler)

	logger.Info("Sales Insights API starting",
		zap.String("port", cfg.Port),
		zap.Strings("personas", cat.PersonaLabels()),
	)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server failed to start", zap.Error(err))
	}
}
