package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"md-terceirizacao-api/config"
	_ "md-terceirizacao-api/docs" // Important for Swagger
	"md-terceirizacao-api/internal/delivery/http/middleware"
	v1 "md-terceirizacao-api/internal/delivery/http/v1"
	"md-terceirizacao-api/internal/usecase"
	"md-terceirizacao-api/pkg/email"
	"md-terceirizacao-api/pkg/logger"
	"md-terceirizacao-api/pkg/upload"
	"md-terceirizacao-api/pkg/validation"

	"github.com/gin-gonic/gin"
)

// readHeaderTimeout caps slow or stalled clients. Handlers are not bounded
// here; delivery relies on the transport's own timeouts.
const readHeaderTimeout = 10 * time.Second

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// @title           MD Terceirização Forms API
// @version         1.0
// @description     Relays contact and job application forms as email notifications.
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	gin.SetMode(cfg.GinMode)

	if err := cfg.Validate(); err != nil {
		logger.Log.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Starting forms API", "port", cfg.Port, "transport", cfg.EmailTransport)

	// 3. Upload staging must exist before any request is accepted
	stager := upload.NewStager(cfg.UploadDir)
	if err := stager.EnsureDir(); err != nil {
		logger.Log.Error("Failed to prepare upload dir", "dir", cfg.UploadDir, "error", err)
		os.Exit(1)
	}

	// 4. Setup Delivery Gateway
	sender, err := email.NewSender(cfg)
	if err != nil {
		logger.Log.Error("Failed to create email sender", "error", err)
		os.Exit(1)
	}
	composer := email.NewComposer(cfg.EmailFrom, cfg.EmailTo, cfg.EscapeHTML)
	if !cfg.EscapeHTML {
		logger.Log.Warn("Submitted text is embedded in email HTML unescaped; set ESCAPE_HTML=true to escape it")
	}

	// 5. Setup UseCases
	validate := validation.New()
	contactUC := usecase.NewContactUsecase(sender, composer, validate)
	applicationUC := usecase.NewApplicationUsecase(sender, composer, validate)
	transport := email.TransportLabel(cfg.EmailTransport)
	healthUC := usecase.NewHealthUsecase(transport, stager.Dir())

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:     contactUC,
		ApplicationUC: applicationUC,
		HealthUC:      healthUC,
		Stager:        stager,
		AliveMessage:  "API funcionando com " + transport + "!",
		RateLimit: middleware.RateLimitConfig{
			RPS:   cfg.RateLimitRPS,
			Burst: cfg.RateLimitBurst,
		},
	})

	// 7. Start Server
	srv := newServer(":"+cfg.Port, router)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
