package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Prem-himanshu/food-waste-management/internal/handlers"
)

type TableRoutes struct {
	handler *handlers.TableHandler
}

func NewTableRoutes(handler *handlers.TableHandler) *TableRoutes {
	return &TableRoutes{handler: handler}
}

func (r *TableRoutes) RegisterRoutes(router *gin.RouterGroup) {
	tables := router.Group("/tables")
	{
		tables.GET("", r.handler.List)
		tables.GET("/:name", r.handler.Preview)
	}
}
