package app

import (
	"github.com/gin-gonic/gin"
	"github.com/mslopes/investsnap/config"
	"github.com/mslopes/investsnap/internal/api"
	"github.com/mslopes/investsnap/internal/service"
	"github.com/mslopes/investsnap/internal/yahoo"
)

// providerFactory builds the upstream market-data client.
// Indirection for unit testing.
var providerFactory = func(cfg config.Config) *yahoo.Client {
	return yahoo.NewClient(cfg.Yahoo)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Creates the Yahoo Finance client.
//   - Initializes the snapshot service (business logic).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Upstream market-data client
	client := providerFactory(cfg)

	// Initialize service layer (business logic)
	svc := service.NewSnapshotService(client)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(client.Ping)
	healthHandler.Register(router)

	// The service holds no connections or files; nothing to release.
	cleanup := func() {}

	return router, cleanup, nil
}
