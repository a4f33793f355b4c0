package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/mindease/mindease-backend/internal/emotions"
	"github.com/mindease/mindease-backend/internal/handlers"
	"github.com/mindease/mindease-backend/internal/observability"
	"github.com/mindease/mindease-backend/internal/platform/chroma"
	"github.com/mindease/mindease-backend/internal/platform/envutil"
	"github.com/mindease/mindease-backend/internal/platform/gemini"
	"github.com/mindease/mindease-backend/internal/platform/logger"
	"github.com/mindease/mindease-backend/internal/server"
)

func main() {
	// Env
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using process environment")
	}

	// Logger
	logMode := envutil.String("LOG_MODE", "development")
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	shutdownOTel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: envutil.String("OTEL_SERVICE_NAME", "mindease"),
		Environment: logMode,
		Version:     envutil.String("SERVICE_VERSION", "dev"),
	})
	if shutdownOTel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownOTel(ctx); err != nil {
				log.Warn("otel shutdown failed", "error", err)
			}
		}()
	}

	// Gateways
	log.Info("Setting up embedding client from main...")
	embedder, err := gemini.NewClient(log)
	if err != nil {
		log.Error("Could not init Gemini client", "error", err)
		os.Exit(1)
	}

	log.Info("Setting up vector store from main...")
	chromaCfg, err := chroma.ResolveConfigFromEnv()
	if err != nil {
		log.Error("Invalid Chroma config", "error", err)
		os.Exit(1)
	}
	store, err := chroma.NewVectorStore(log, chromaCfg)
	if err != nil {
		log.Error("Could not init Chroma vector store", "error", err)
		os.Exit(1)
	}

	// Engine
	log.Info("Setting up emotions engine from main...")
	engine := emotions.NewEngine(log, embedder, store)

	// Handlers
	log.Info("Setting up handlers from main...")
	ventHandler := handlers.NewVentHandler(log, engine)
	searchHandler := handlers.NewSearchHandler(log, engine)
	cohortHandler := handlers.NewCohortHandler(log, engine)
	crisisHandler := handlers.NewCrisisHandler(log, engine)
	anchorsHandler := handlers.NewAnchorsHandler(log, engine)
	statsHandler := handlers.NewStatsHandler(log, engine)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		VentHandler:    ventHandler,
		SearchHandler:  searchHandler,
		CohortHandler:  cohortHandler,
		CrisisHandler:  crisisHandler,
		AnchorsHandler: anchorsHandler,
		StatsHandler:   statsHandler,
	})

	port := envutil.String("PORT", "8080")
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
