package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/mindease/mindease-backend/internal/handlers"
	"github.com/mindease/mindease-backend/internal/platform/envutil"
)

type RouterConfig struct {
	VentHandler    *handlers.VentHandler
	SearchHandler  *handlers.SearchHandler
	CohortHandler  *handlers.CohortHandler
	CrisisHandler  *handlers.CrisisHandler
	AnchorsHandler *handlers.AnchorsHandler
	StatsHandler   *handlers.StatsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware(envutil.String("OTEL_SERVICE_NAME", "mindease")))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")
	{
		api.GET("/health", cfg.StatsHandler.HealthCheck)
		api.POST("/vent", cfg.VentHandler.AddVent)
		api.POST("/search/emotion", cfg.SearchHandler.SearchByEmotion)
		api.GET("/cohort/:cohortId/health", cfg.CohortHandler.GetCohortHealth)
		// Restricted surface: the only route that exposes per-user
		// crisis flags for human review.
		api.GET("/crisis/check", cfg.CrisisHandler.CheckCrisisFlags)
		api.GET("/emotions/anchors", cfg.AnchorsHandler.GetAnchors)
		api.GET("/stats", cfg.StatsHandler.GetStats)
	}

	return router
}
