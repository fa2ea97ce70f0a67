package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Prem-himanshu/food-waste-management/internal/responses"
	"github.com/Prem-himanshu/food-waste-management/internal/services"
	"github.com/Prem-himanshu/food-waste-management/internal/utils"
)

type ListingHandler struct {
	listingService *services.ListingService
}

func NewListingHandler(listingService *services.ListingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// Filter returns the listings matching the query-string filters. All filters
// are optional; with none set every listing comes back.
func (h *ListingHandler) Filter(c *gin.Context) {
	filter := &services.ListingFilter{
		Cities:    utils.NonEmpty(c.QueryArray("city")),
		Providers: utils.NonEmpty(c.QueryArray("provider")),
		FoodTypes: utils.NonEmpty(c.QueryArray("food_type")),
		MealTypes: utils.NonEmpty(c.QueryArray("meal_type")),
	}

	if raw := c.Query("min_quantity"); raw != "" {
		minQty, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			responses.Fail(c, http.StatusBadRequest, err, "Invalid min_quantity")
			return
		}
		filter.MinQuantity = minQty
	}

	result, err := h.listingService.Filter(filter)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to read food listings")
		return
	}

	responses.Success(c, http.StatusOK, result, "Listings fetched successfully")
}

func (h *ListingHandler) Add(c *gin.Context) {
	var req services.AddListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	listing, err := h.listingService.Add(&req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Failed to add listing")
		return
	}

	responses.Success(c, http.StatusCreated, listing, "Listing added successfully")
}

func (h *ListingHandler) Options(c *gin.Context) {
	options, err := h.listingService.Options()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to load filter options")
		return
	}

	responses.Success(c, http.StatusOK, options, "Filter options fetched successfully")
}

func (h *ListingHandler) Summary(c *gin.Context) {
	summary, err := h.listingService.Summary()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to build dashboard summary")
		return
	}

	responses.Success(c, http.StatusOK, summary, "Dashboard summary fetched successfully")
}
