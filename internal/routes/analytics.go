package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Prem-himanshu/food-waste-management/internal/handlers"
)

type AnalyticsRoutes struct {
	handler *handlers.AnalyticsHandler
}

func NewAnalyticsRoutes(handler *handlers.AnalyticsHandler) *AnalyticsRoutes {
	return &AnalyticsRoutes{handler: handler}
}

func (r *AnalyticsRoutes) RegisterRoutes(router *gin.RouterGroup) {
	analytics := router.Group("/analytics")
	{
		analytics.GET("", r.handler.Catalog)
		analytics.POST("/:id/run", r.handler.Run)
	}
}
