package services

import (
	"fmt"
	"strings"

	"github.com/Prem-himanshu/food-waste-management/internal/models"
	"github.com/Prem-himanshu/food-waste-management/internal/repositories"
	"github.com/Prem-himanshu/food-waste-management/internal/utils"
)

type ListingService struct {
	listingRepo  *repositories.ListingRepository
	providerRepo *repositories.ProviderRepository
	receiverRepo *repositories.ReceiverRepository
	queryService *QueryService
}

func NewListingService(listingRepo *repositories.ListingRepository, providerRepo *repositories.ProviderRepository, receiverRepo *repositories.ReceiverRepository, queryService *QueryService) *ListingService {
	return &ListingService{
		listingRepo:  listingRepo,
		providerRepo: providerRepo,
		receiverRepo: receiverRepo,
		queryService: queryService,
	}
}

// ListingFilter carries the optional dashboard filters. Empty slices and a
// zero minimum quantity mean "show everything".
type ListingFilter struct {
	Cities      []string
	Providers   []string
	FoodTypes   []string
	MealTypes   []string
	MinQuantity int64
}

// Filter returns the listings matching the filter as a tabular result. All
// values are bound positionally; a filter matching nothing yields an empty
// result.
func (s *ListingService) Filter(filter *ListingFilter) (*QueryResult, error) {
	var conditions []string
	var args []any

	appendIn := func(column string, values []string) {
		if len(values) == 0 {
			return
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(values)), ",")
		conditions = append(conditions, fmt.Sprintf("%s IN (%s)", column, placeholders))
		for _, v := range values {
			args = append(args, v)
		}
	}

	appendIn("Location", filter.Cities)
	appendIn("Food_Type", filter.FoodTypes)
	appendIn("Meal_Type", filter.MealTypes)

	if len(filter.Providers) > 0 {
		ids, err := s.providerRepo.IDsByNames(filter.Providers)
		if err != nil {
			return nil, err
		}
		// Unknown provider names resolve to no IDs and therefore no rows.
		if len(ids) == 0 {
			conditions = append(conditions, "1 = 0")
		} else {
			placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
			conditions = append(conditions, fmt.Sprintf("Provider_ID IN (%s)", placeholders))
			for _, id := range ids {
				args = append(args, id)
			}
		}
	}

	if filter.MinQuantity > 0 {
		conditions = append(conditions, "CAST(Quantity AS INTEGER) >= ?")
		args = append(args, filter.MinQuantity)
	}

	query := "SELECT * FROM food_listings"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	return s.queryService.Read(query, args...)
}

type AddListingRequest struct {
	FoodName     string  `json:"food_name" binding:"required"`
	Quantity     int64   `json:"quantity"`
	ExpiryDate   *string `json:"expiry_date"`
	ProviderID   *int64  `json:"provider_id"`
	ProviderType *string `json:"provider_type"`
	Location     string  `json:"location" binding:"required"`
	FoodType     string  `json:"food_type" binding:"required"`
	MealType     string  `json:"meal_type" binding:"required"`
}

// Add inserts a new listing. Food_ID is assigned by the store.
func (s *ListingService) Add(req *AddListingRequest) (*models.FoodListing, error) {
	if req.Quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}
	if !utils.Contains(models.FoodTypes, req.FoodType) {
		return nil, fmt.Errorf("invalid food type %q", req.FoodType)
	}
	if !utils.Contains(models.MealTypes, req.MealType) {
		return nil, fmt.Errorf("invalid meal type %q", req.MealType)
	}

	if req.ProviderID != nil {
		exists, err := s.providerRepo.ExistsByID(*req.ProviderID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("provider %d does not exist", *req.ProviderID)
		}
	}

	listing := &models.FoodListing{
		FoodName:     req.FoodName,
		Quantity:     req.Quantity,
		ExpiryDate:   req.ExpiryDate,
		ProviderID:   req.ProviderID,
		ProviderType: req.ProviderType,
		Location:     req.Location,
		FoodType:     req.FoodType,
		MealType:     req.MealType,
	}

	id, err := s.listingRepo.Insert(listing)
	if err != nil {
		return nil, fmt.Errorf("failed to add listing: %w", err)
	}
	listing.FoodID = id

	return listing, nil
}

// FilterOptions are the distinct values the dashboard filter widgets offer.
type FilterOptions struct {
	Cities    []string `json:"cities"`
	Providers []string `json:"providers"`
	FoodTypes []string `json:"food_types"`
	MealTypes []string `json:"meal_types"`
}

func (s *ListingService) Options() (*FilterOptions, error) {
	cities, err := s.listingRepo.DistinctValues("location")
	if err != nil {
		return nil, err
	}
	providers, err := s.providerRepo.Names()
	if err != nil {
		return nil, err
	}
	foodTypes, err := s.listingRepo.DistinctValues("food_type")
	if err != nil {
		return nil, err
	}
	mealTypes, err := s.listingRepo.DistinctValues("meal_type")
	if err != nil {
		return nil, err
	}

	return &FilterOptions{
		Cities:    cities,
		Providers: providers,
		FoodTypes: foodTypes,
		MealTypes: mealTypes,
	}, nil
}

// Summary is the dashboard's quick-stats panel.
type Summary struct {
	TotalQuantity  int64            `json:"total_quantity"`
	TotalProviders int64            `json:"total_providers"`
	TotalReceivers int64            `json:"total_receivers"`
	ListingsByCity []map[string]any `json:"listings_by_city"`
}

const topCities = 40

func (s *ListingService) Summary() (*Summary, error) {
	totalQty, err := s.listingRepo.TotalQuantity()
	if err != nil {
		return nil, err
	}
	providers, err := s.providerRepo.Count()
	if err != nil {
		return nil, err
	}
	receivers, err := s.receiverRepo.Count()
	if err != nil {
		return nil, err
	}

	byCity, err := s.queryService.Read(
		"SELECT Location AS City, COUNT(*) AS Listings FROM food_listings GROUP BY Location ORDER BY Listings DESC LIMIT ?",
		topCities,
	)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalQuantity:  totalQty,
		TotalProviders: providers,
		TotalReceivers: receivers,
		ListingsByCity: byCity.Rows,
	}, nil
}
