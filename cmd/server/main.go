package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ardhichain/registry/internal/config"
	"github.com/ardhichain/registry/internal/handlers"
	"github.com/ardhichain/registry/internal/idgen"
	"github.com/ardhichain/registry/internal/logger"
	"github.com/ardhichain/registry/internal/metrics"
	"github.com/ardhichain/registry/internal/middleware"
	"github.com/ardhichain/registry/internal/oracle"
	"github.com/ardhichain/registry/internal/registry"
	"github.com/ardhichain/registry/internal/store"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting ArdhiChain registry API", map[string]interface{}{
		"version":     handlers.APIVersion,
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Seed the in-memory ledger
	ledger := store.NewSeeded()
	log.Info("Ledger seeded", map[string]interface{}{
		"parcels": len(ledger.ListParcels()),
		"user_id": ledger.User().ID,
	})

	// Prometheus registry and application metrics
	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector())
	promReg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	met := metrics.New(promReg)

	// Verification oracle client
	verifier := oracle.NewGemini(cfg.Oracle, log, met)
	if cfg.Oracle.APIKey == "" {
		log.Warn("GEMINI_API_KEY is not set; dispute checks will return the neutral verdict", nil)
	}

	// Registry service over the ledger
	registryService := registry.NewService(ledger, idgen.NewRandom(), log, met)

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	// Register health check and metrics routes
	healthHandler := handlers.NewHealthHandler(ledger, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})))

	// Initialize handlers
	parcelHandler := handlers.NewParcelHandler(registryService)
	verifyHandler := handlers.NewVerifyHandler(verifier)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		parcels := v1.Group("/parcels")
		{
			parcels.GET("", parcelHandler.List)
			parcels.GET("/:id", parcelHandler.Get)
			parcels.POST("/:id/transfer", parcelHandler.Transfer)
		}
		v1.GET("/portfolio", parcelHandler.Portfolio)
		v1.GET("/profile", parcelHandler.Profile)

		verify := v1.Group("/verify")
		{
			verify.POST("/dispute", verifyHandler.Dispute)
			verify.POST("/document", verifyHandler.Document)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
