package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prem-himanshu/food-waste-management/internal/responses"
	"github.com/Prem-himanshu/food-waste-management/internal/services"
)

type QueryHandler struct {
	queryService *services.QueryService
}

func NewQueryHandler(queryService *services.QueryService) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
	}
}

// Execute runs an ad-hoc SQL statement with positional parameters. The
// caller is trusted; execution errors come back as plain messages.
func (h *QueryHandler) Execute(c *gin.Context) {
	var req services.ExecuteQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: query is required")
		return
	}

	result, err := h.queryService.Execute(&req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Failed to execute query")
		return
	}

	responses.Success(c, http.StatusOK, result, "Query executed successfully")
}
