package server

import (
	"github.com/gin-gonic/gin"

	"valor-backend/internal/analysis"
	"valor-backend/internal/i18n"
	"valor-backend/internal/shared/config"
	"valor-backend/internal/shared/metrics"
	"valor-backend/internal/shared/server/middleware"
	"valor-backend/internal/shared/server/respond"
	"valor-backend/internal/vision"
	"valor-backend/internal/vision/gemini"
	"valor-backend/internal/vision/openai"
)

const version = "2.0.0"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var remote vision.Client
	switch cfg.VisionProvider {
	case "gemini":
		remote = gemini.NewClient(cfg.GeminiAPIKey, cfg.VisionModel)
	default:
		remote = openai.NewClient(cfg.OpenAIAPIKey, cfg.VisionModel, cfg.VisionTimeout)
	}

	svc := &analysis.Service{
		Vision:       remote,
		Offline:      vision.OfflineClient{},
		OfflineMode:  cfg.UseOfflineMode,
		StageTimeout: cfg.VisionTimeout,
	}
	analysisHandler := analysis.NewHandler(svc)

	r.GET("/", func(c *gin.Context) {
		respond.OK(c, gin.H{
			"message": "Valor AI - Produce Quality Analysis API",
			"version": version,
			"status":  "operational",
			"health":  "/health",
			"mode":    svc.Mode(),
		})
	})
	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{
			"status":              "healthy",
			"version":             version,
			"mode":                svc.Mode(),
			"provider":            remote.Name(),
			"provider_configured": providerConfigured(cfg),
			"supported_languages": i18n.SupportedLanguages,
		})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	analysisHandler.RegisterRoutes(api)

	return r
}

func providerConfigured(cfg config.Config) bool {
	switch cfg.VisionProvider {
	case "gemini":
		return cfg.GeminiAPIKey != ""
	default:
		return cfg.OpenAIAPIKey != ""
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
