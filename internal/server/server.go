package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sampledata/internal/config"
	"sampledata/internal/handlers"
	"sampledata/internal/metrics"
	"sampledata/internal/middlewares"
	"sampledata/internal/repositories"
	"sampledata/internal/routes"
	"sampledata/internal/services"
)

// NewSampleService builds the catalog, value source and synthesizer the
// HTTP server and the CLI share.
func NewSampleService(cfg *config.Config, recorder metrics.Recorder, logger *zap.Logger) *services.SampleService {
	schemaRepo := repositories.NewSchemaRepository()
	synthesizer := services.NewSynthesizer(services.NewFakerSource(cfg.Seed))
	return services.NewSampleService(schemaRepo, synthesizer, recorder, logger)
}

// NewRouter returns the gin engine with middleware and routes registered.
// prom may be nil, in which case /metrics is not served.
func NewRouter(cfg *config.Config, sampleService *services.SampleService, prom *metrics.Prometheus, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middlewares.RequestID,
		middlewares.Logger(logger),
		middlewares.Recovery(logger),
		middlewares.CORS(cfg.AllowAllOrigins(), cfg.AllowedOrigins),
	)

	// Dependency injection
	schemaHandler := handlers.NewSchemaHandler(sampleService)
	downloadHandler := handlers.NewDownloadHandler(sampleService, logger)

	routes.RegisterRoutes(router, schemaHandler, downloadHandler)

	if prom != nil {
		router.GET("/metrics", gin.WrapH(prom.Handler()))
	}

	return router
}

// NewServer assembles the HTTP server from configuration.
func NewServer(cfg *config.Config, logger *zap.Logger) *http.Server {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	var (
		recorder metrics.Recorder = metrics.Nop{}
		prom     *metrics.Prometheus
	)
	if cfg.MetricsEnabled {
		prom = metrics.NewPrometheus()
		recorder = prom
	}

	sampleService := NewSampleService(cfg, recorder, logger)
	router := NewRouter(cfg, sampleService, prom, logger)

	logger.Info("sample catalog loaded", zap.Int("tables", len(sampleService.TableNames())))

	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		IdleTimeout:  cfg.IdleTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}
