package services

import (
	"fmt"
	"time"

	"github.com/Prem-himanshu/food-waste-management/internal/models"
	"github.com/Prem-himanshu/food-waste-management/internal/repositories"
	"github.com/Prem-himanshu/food-waste-management/internal/utils"
)

type ClaimService struct {
	claimRepo    *repositories.ClaimRepository
	listingRepo  *repositories.ListingRepository
	receiverRepo *repositories.ReceiverRepository
}

func NewClaimService(claimRepo *repositories.ClaimRepository, listingRepo *repositories.ListingRepository, receiverRepo *repositories.ReceiverRepository) *ClaimService {
	return &ClaimService{
		claimRepo:    claimRepo,
		listingRepo:  listingRepo,
		receiverRepo: receiverRepo,
	}
}

type CreateClaimRequest struct {
	FoodID     int64 `json:"food_id" binding:"required"`
	ReceiverID int64 `json:"receiver_id" binding:"required"`
}

// Create submits a new claim. Status is always Pending regardless of caller
// input, and the timestamp is the creation instant. The schema declares no
// foreign keys, so the existence checks here are the only guard against
// dangling references.
func (s *ClaimService) Create(req *CreateClaimRequest) (*models.Claim, error) {
	exists, err := s.listingRepo.ExistsByID(req.FoodID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("food listing %d does not exist", req.FoodID)
	}

	exists, err = s.receiverRepo.ExistsByID(req.ReceiverID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("receiver %d does not exist", req.ReceiverID)
	}

	claim := &models.Claim{
		FoodID:     req.FoodID,
		ReceiverID: req.ReceiverID,
		Status:     models.ClaimStatusPending,
		Timestamp:  time.Now().Format(time.RFC3339),
	}

	id, err := s.claimRepo.Insert(claim)
	if err != nil {
		return nil, fmt.Errorf("failed to submit claim: %w", err)
	}
	claim.ClaimID = id

	return claim, nil
}

// UpdateStatus moves a claim to one of Pending/Completed/Cancelled. Repeating
// the same target status is a no-op that still succeeds.
func (s *ClaimService) UpdateStatus(claimID int64, status string) (*models.Claim, error) {
	if !utils.Contains(models.ClaimStatuses, status) {
		return nil, fmt.Errorf("invalid claim status %q", status)
	}

	claim, err := s.claimRepo.GetByID(claimID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, fmt.Errorf("claim %d does not exist", claimID)
	}

	if _, err := s.claimRepo.UpdateStatus(claimID, status); err != nil {
		return nil, fmt.Errorf("failed to update claim %d: %w", claimID, err)
	}

	claim.Status = status
	return claim, nil
}

func (s *ClaimService) List() ([]models.Claim, error) {
	return s.claimRepo.List()
}
