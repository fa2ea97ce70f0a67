package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Prem-himanshu/food-waste-management/internal/responses"
	"github.com/Prem-himanshu/food-waste-management/internal/services"
)

type ClaimHandler struct {
	claimService *services.ClaimService
}

func NewClaimHandler(claimService *services.ClaimService) *ClaimHandler {
	return &ClaimHandler{
		claimService: claimService,
	}
}

func (h *ClaimHandler) List(c *gin.Context) {
	claims, err := h.claimService.List()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to read claims")
		return
	}

	responses.Success(c, http.StatusOK, claims, "Claims fetched successfully")
}

func (h *ClaimHandler) Create(c *gin.Context) {
	var req services.CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	claim, err := h.claimService.Create(&req)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Failed to submit claim")
		return
	}

	responses.Success(c, http.StatusCreated, claim, "Claim submitted as Pending")
}

type updateClaimStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ClaimHandler) UpdateStatus(c *gin.Context) {
	claimID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid claim id")
		return
	}

	var req updateClaimStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body: status is required")
		return
	}

	claim, err := h.claimService.UpdateStatus(claimID, req.Status)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Failed to update claim")
		return
	}

	responses.Success(c, http.StatusOK, claim, "Claim updated successfully")
}
