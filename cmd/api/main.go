package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/salgaderia-api/internal/application/service"
	"github.com/sangkips/salgaderia-api/internal/config"
	"github.com/sangkips/salgaderia-api/internal/infrastructure/database"
	"github.com/sangkips/salgaderia-api/internal/infrastructure/repository"
	"github.com/sangkips/salgaderia-api/internal/logging"
	"github.com/sangkips/salgaderia-api/internal/presentation/http/handler"
	"github.com/sangkips/salgaderia-api/internal/presentation/http/routes"
	"github.com/sangkips/salgaderia-api/pkg/printer"
	"github.com/sangkips/salgaderia-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logging.Setup(cfg.Log.Level, cfg.Log.Pretty)
	log := logging.Get("main")

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Seed default data
	if err := database.SeedDefaultData(db, cfg.Store, cfg.Admin); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default data")
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	operatorRepo := repository.NewOperatorRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize thermal printer
	thermalPrinter, err := printer.New(printer.Config{
		Type:    cfg.Printer.Type,
		USBPath: cfg.Printer.USBPath,
		Address: cfg.Printer.Address,
		Timeout: cfg.Printer.Timeout,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize printer, printing disabled")
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(operatorRepo, jwtManager)
	settingsService := service.NewSettingsService(settingsRepo)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo, productRepo)
	printerService := service.NewPrinterService(thermalPrinter, cfg.Printer.ASCII())
	receiptService := service.NewReceiptService(orderRepo, productRepo, settingsService, printerService, cfg.Store.Location())

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Settings: handler.NewSettingsHandler(settingsService),
		Product:  handler.NewProductHandler(productService, cfg.App.UploadMaxSize),
		Order:    handler.NewOrderHandler(orderService),
		Receipt:  handler.NewReceiptHandler(receiptService),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Stop:       ctx.Done(),
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", port).Str("env", cfg.App.Env).Str("printer", thermalPrinter.Type()).
			Msgf("Starting %s server", cfg.App.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
