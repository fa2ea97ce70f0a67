package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prem-himanshu/food-waste-management/internal/handlers"
	"github.com/Prem-himanshu/food-waste-management/internal/middlewares"
	"github.com/Prem-himanshu/food-waste-management/internal/services"
)

func RegisterRoutes(router *gin.Engine, readiness *services.ReadinessService, listingHandler *handlers.ListingHandler, claimHandler *handlers.ClaimHandler, analyticsHandler *handlers.AnalyticsHandler, queryHandler *handlers.QueryHandler, tableHandler *handlers.TableHandler, adminHandler *handlers.AdminHandler) {
	api := router.Group("/api/v1")

	// The reload endpoint stays reachable while the store is unready so the
	// operator can fix the data; everything else waits for readiness.
	adminRoutes := NewAdminRoutes(adminHandler)
	adminRoutes.RegisterRoutes(api)

	data := api.Group("")
	data.Use(middlewares.RequireReady(readiness))
	{
		listingRoutes := NewListingRoutes(listingHandler)
		listingRoutes.RegisterRoutes(data)

		claimRoutes := NewClaimRoutes(claimHandler)
		claimRoutes.RegisterRoutes(data)

		analyticsRoutes := NewAnalyticsRoutes(analyticsHandler)
		analyticsRoutes.RegisterRoutes(data)

		queryRoutes := NewQueryRoutes(queryHandler)
		queryRoutes.RegisterRoutes(data)

		tableRoutes := NewTableRoutes(tableHandler)
		tableRoutes.RegisterRoutes(data)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
