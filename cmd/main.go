package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zndrme19-del/soda-pop-pos/internal/handler"
	"github.com/zndrme19-del/soda-pop-pos/internal/repositories"
	"github.com/zndrme19-del/soda-pop-pos/internal/router"
	"github.com/zndrme19-del/soda-pop-pos/internal/service"
	"github.com/zndrme19-del/soda-pop-pos/pkg/envconfig"
	"github.com/zndrme19-del/soda-pop-pos/pkg/flags"
	"github.com/zndrme19-del/soda-pop-pos/pkg/jsonstore"
	"github.com/zndrme19-del/soda-pop-pos/pkg/logger"
	"github.com/zndrme19-del/soda-pop-pos/pkg/shutdownsetup"
)

func main() {
	// Money travels as plain JSON numbers, same as the persisted document
	decimal.MarshalJSONWithoutQuotes = true

	// Parse command-line flags
	flagConfig := flags.Parse()

	// Validate flag configuration
	if err := flagConfig.Validate(); err != nil {
		fmt.Printf("Configuration error: %v\n", err)
		return
	}

	envErr := envconfig.LoadEnvFile(".env")

	loggerConfig := logger.Config{
		Level:        envconfig.GetLogLevel(),
		Format:       envconfig.GetEnv("LOG_FORMAT", "json"),
		Output:       envconfig.GetEnv("LOG_OUTPUT", "stdout"),
		EnableCaller: envconfig.GetEnv("LOG_ENABLE_CALLER", "true") == "true",
		Environment:  envconfig.GetEnv("ENVIRONMENT", "development"),
	}

	appLogger := logger.New(loggerConfig)

	if envErr != nil {
		appLogger.Warn("Failed to load .env file", "error", envErr)
	} else {
		appLogger.Debug(".env file loaded successfully")
	}

	appLogger.Info("Starting Soda Pop POS application",
		"environment", loggerConfig.Environment,
		"log_level", loggerConfig.Level)

	storeConfig := envconfig.LoadStoreConfig()
	if flagConfig.Data != "" {
		storeConfig.Path = flagConfig.Data
	}

	// Open the JSON document store
	store, err := jsonstore.Open(storeConfig, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open data store", "path", storeConfig.Path, "error", err)
	}

	if err := store.HealthCheck(); err != nil {
		appLogger.Fatal("Data store health check failed", "path", store.Path(), "error", err)
	}
	appLogger.Info("Data store ready", "path", store.Path())

	// Initialize repositories with logger and store
	categoryRepo := repositories.NewCategoryRepository(appLogger, store)
	menuRepo := repositories.NewMenuRepository(appLogger, store)
	orderRepo := repositories.NewOrderRepository(appLogger, store)
	salesRepo := repositories.NewSalesRepository(appLogger, store)

	// Initialize services with logger
	catalogService := service.NewCatalogService(categoryRepo, menuRepo, appLogger)
	orderService := service.NewOrderService(orderRepo, appLogger)
	salesService := service.NewSalesService(salesRepo, appLogger)

	// Initialize handlers with logger
	menuHandler := handler.NewMenuHandler(catalogService, appLogger)
	categoryHandler := handler.NewCategoryHandler(catalogService, appLogger)
	orderHandler := handler.NewOrderHandler(orderService, appLogger)
	salesHandler := handler.NewSalesHandler(salesService, appLogger)

	staticDir := envconfig.GetEnv("STATIC_DIR", "public")
	mux := router.NewRouter(menuHandler, categoryHandler, orderHandler, salesHandler, staticDir)

	httpHandler := appLogger.HTTPMiddleware(mux)

	initialPort := flagConfig.Port
	if initialPort == "" {
		initialPort = envconfig.GetEnv("PORT", "8080")
	}
	host := envconfig.GetEnv("HOST", "localhost")

	port := initialPort

	server := &http.Server{
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		server.Addr = host + ":" + port

		go func() {
			appLogger.Info("Starting HTTP server",
				"host", host,
				"port", port,
				"address", server.Addr)

			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				appLogger.Error("Server error", "error", err)
				serverErrors <- err
			}
		}()

		select {
		case err := <-serverErrors:
			if strings.Contains(err.Error(), "address already in use") && i < maxRetries-1 {
				portNum := 8080 + i + 1
				port = fmt.Sprintf("%d", portNum)
				appLogger.Warn("Port already in use, trying alternative port",
					"current_port", server.Addr,
					"next_port", port)
				continue
			} else {
				appLogger.Error("Failed to start server after retries", "error", err)
				return
			}
		case <-time.After(200 * time.Millisecond):
			appLogger.Info("Server started successfully", "port", port)
		}

		break
	}

	select {
	case err := <-serverErrors:
		appLogger.Error("Could not start server", "error", err)
		return
	default:
		shutdownsetup.SetupGracefulShutdown(server, appLogger)
	}
}
