package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/Prem-himanshu/food-waste-management/internal/config"
	"github.com/Prem-himanshu/food-waste-management/internal/database"
	"github.com/Prem-himanshu/food-waste-management/internal/handlers"
	"github.com/Prem-himanshu/food-waste-management/internal/loader"
	"github.com/Prem-himanshu/food-waste-management/internal/repositories"
	"github.com/Prem-himanshu/food-waste-management/internal/routes"
	"github.com/Prem-himanshu/food-waste-management/internal/services"
)

func NewServer() *http.Server {
	cfg := config.Load()
	logg := config.GetLogger()

	store := database.NewStore(cfg.StorePath)
	ld := loader.New(store, cfg.SourceDir)

	readiness := services.NewReadinessService(store, ld)

	// Warm the readiness check at startup so the load-from-source-files run
	// happens before the first request. An unready store is not fatal here:
	// data routes answer 503 until the operator provides source files.
	if err := readiness.EnsureReady(); err != nil {
		logg.Warnf("Store not ready at startup: %v", err)
	} else {
		logg.Infof("Store ready at %s", cfg.StorePath)
	}

	// Dependency injection
	listingRepo := repositories.NewListingRepository(store)
	providerRepo := repositories.NewProviderRepository(store)
	receiverRepo := repositories.NewReceiverRepository(store)
	claimRepo := repositories.NewClaimRepository(store)

	queryService := services.NewQueryService(store)
	listingService := services.NewListingService(listingRepo, providerRepo, receiverRepo, queryService)
	claimService := services.NewClaimService(claimRepo, listingRepo, receiverRepo)
	analyticsService := services.NewAnalyticsService(queryService)
	tableService := services.NewTableService(store, queryService)

	listingHandler := handlers.NewListingHandler(listingService)
	claimHandler := handlers.NewClaimHandler(claimService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	queryHandler := handlers.NewQueryHandler(queryService)
	tableHandler := handlers.NewTableHandler(tableService)
	adminHandler := handlers.NewAdminHandler(readiness)

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.Default())
	routes.RegisterRoutes(router, readiness, listingHandler, claimHandler, analyticsHandler, queryHandler, tableHandler, adminHandler)

	// Create and configure the HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
