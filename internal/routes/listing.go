package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Prem-himanshu/food-waste-management/internal/handlers"
)

type ListingRoutes struct {
	handler *handlers.ListingHandler
}

func NewListingRoutes(handler *handlers.ListingHandler) *ListingRoutes {
	return &ListingRoutes{handler: handler}
}

func (r *ListingRoutes) RegisterRoutes(router *gin.RouterGroup) {
	listings := router.Group("/listings")
	{
		listings.GET("", r.handler.Filter)
		listings.POST("", r.handler.Add)
		listings.GET("/options", r.handler.Options)
	}

	router.GET("/dashboard/summary", r.handler.Summary)
}
