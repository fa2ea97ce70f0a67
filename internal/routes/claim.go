package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Prem-himanshu/food-waste-management/internal/handlers"
)

type ClaimRoutes struct {
	handler *handlers.ClaimHandler
}

func NewClaimRoutes(handler *handlers.ClaimHandler) *ClaimRoutes {
	return &ClaimRoutes{handler: handler}
}

func (r *ClaimRoutes) RegisterRoutes(router *gin.RouterGroup) {
	claims := router.Group("/claims")
	{
		claims.GET("", r.handler.List)
		claims.POST("", r.handler.Create)
		claims.PATCH("/:id/status", r.handler.UpdateStatus)
	}
}
