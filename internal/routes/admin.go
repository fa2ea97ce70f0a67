package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Prem-himanshu/food-waste-management/internal/handlers"
)

type AdminRoutes struct {
	handler *handlers.AdminHandler
}

func NewAdminRoutes(handler *handlers.AdminHandler) *AdminRoutes {
	return &AdminRoutes{handler: handler}
}

func (r *AdminRoutes) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		admin.POST("/reload", r.handler.Reload)
	}
}
