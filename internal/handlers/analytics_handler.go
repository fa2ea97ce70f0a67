package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Prem-himanshu/food-waste-management/internal/responses"
	"github.com/Prem-himanshu/food-waste-management/internal/services"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) Catalog(c *gin.Context) {
	responses.Success(c, http.StatusOK, h.analyticsService.Catalog(), "Analytics catalog fetched successfully")
}

type runAnalyticsRequest struct {
	City string `json:"city"`
}

// Run executes a canned query by catalog id. The city parameter is only
// consulted for entries that declare they need one.
func (h *AnalyticsHandler) Run(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid query id")
		return
	}

	var req runAnalyticsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
			return
		}
	}

	result, err := h.analyticsService.Run(id, req.City)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Failed to run analytics query")
		return
	}

	responses.Success(c, http.StatusOK, result, "Query executed successfully")
}
