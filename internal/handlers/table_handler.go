package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prem-himanshu/food-waste-management/internal/responses"
	"github.com/Prem-himanshu/food-waste-management/internal/services"
)

type TableHandler struct {
	tableService *services.TableService
}

func NewTableHandler(tableService *services.TableService) *TableHandler {
	return &TableHandler{
		tableService: tableService,
	}
}

func (h *TableHandler) List(c *gin.Context) {
	tables, err := h.tableService.ListTables()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to list tables")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"tables": tables}, "Tables fetched successfully")
}

func (h *TableHandler) Preview(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		responses.Fail(c, http.StatusBadRequest, nil, "Table name is required")
		return
	}

	result, err := h.tableService.Preview(name)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Failed to preview table")
		return
	}

	responses.Success(c, http.StatusOK, result, "Table preview fetched successfully")
}
