package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prem-himanshu/food-waste-management/internal/repositories"
)

func newListingService(t *testing.T) *ListingService {
	t.Helper()
	store := seedStore(t)
	listingRepo := repositories.NewListingRepository(store)
	providerRepo := repositories.NewProviderRepository(store)
	receiverRepo := repositories.NewReceiverRepository(store)
	return NewListingService(listingRepo, providerRepo, receiverRepo, NewQueryService(store))
}

func TestFilterNoFiltersReturnsEverything(t *testing.T) {
	svc := newListingService(t)

	result, err := svc.Filter(&ListingFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.RowCount)
}

func TestFilterByCityAndType(t *testing.T) {
	svc := newListingService(t)

	result, err := svc.Filter(&ListingFilter{
		Cities:    []string{"Delhi"},
		FoodTypes: []string{"Vegetarian"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.RowCount)
	assert.Equal(t, "Rice", result.Rows[0]["Food_Name"])
}

func TestFilterByProviderName(t *testing.T) {
	svc := newListingService(t)

	result, err := svc.Filter(&ListingFilter{Providers: []string{"B Co"}})
	require.NoError(t, err)
	require.Equal(t, 1, result.RowCount)
	assert.Equal(t, "Bread", result.Rows[0]["Food_Name"])
}

func TestFilterZeroMatchesIsEmptyNotError(t *testing.T) {
	svc := newListingService(t)

	result, err := svc.Filter(&ListingFilter{Cities: []string{"Atlantis"}})
	require.NoError(t, err)
	assert.Equal(t, 0, result.RowCount)
	assert.Empty(t, result.Rows)

	// Unknown provider names also match nothing rather than erroring.
	result, err = svc.Filter(&ListingFilter{Providers: []string{"No Such Provider"}})
	require.NoError(t, err)
	assert.Equal(t, 0, result.RowCount)
}

func TestFilterByMinQuantity(t *testing.T) {
	svc := newListingService(t)

	result, err := svc.Filter(&ListingFilter{MinQuantity: 8})
	require.NoError(t, err)
	assert.Equal(t, 2, result.RowCount)
}

func TestAddListingAssignsID(t *testing.T) {
	svc := newListingService(t)

	providerID := int64(1)
	listing, err := svc.Add(&AddListingRequest{
		FoodName:   "Soup",
		Quantity:   4,
		ProviderID: &providerID,
		Location:   "Delhi",
		FoodType:   "Vegan",
		MealType:   "Dinner",
	})
	require.NoError(t, err)
	assert.Greater(t, listing.FoodID, int64(3))

	result, err := svc.Filter(&ListingFilter{})
	require.NoError(t, err)
	assert.Equal(t, 4, result.RowCount)
}

func TestAddListingValidation(t *testing.T) {
	svc := newListingService(t)

	_, err := svc.Add(&AddListingRequest{
		FoodName: "Soup", Quantity: -1, Location: "Delhi", FoodType: "Vegan", MealType: "Dinner",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity")

	_, err = svc.Add(&AddListingRequest{
		FoodName: "Soup", Location: "Delhi", FoodType: "Raw", MealType: "Dinner",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid food type")

	missing := int64(999)
	_, err = svc.Add(&AddListingRequest{
		FoodName: "Soup", ProviderID: &missing, Location: "Delhi", FoodType: "Vegan", MealType: "Dinner",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider 999")
}

func TestOptions(t *testing.T) {
	svc := newListingService(t)

	options, err := svc.Options()
	require.NoError(t, err)
	assert.Equal(t, []string{"Delhi", "Mumbai"}, options.Cities)
	assert.Equal(t, []string{"A Co", "B Co"}, options.Providers)
	assert.Equal(t, []string{"Non-Vegetarian", "Vegan", "Vegetarian"}, options.FoodTypes)
	assert.Equal(t, []string{"Breakfast", "Dinner", "Lunch"}, options.MealTypes)
}

func TestSummary(t *testing.T) {
	svc := newListingService(t)

	summary, err := svc.Summary()
	require.NoError(t, err)
	assert.Equal(t, int64(23), summary.TotalQuantity)
	assert.Equal(t, int64(2), summary.TotalProviders)
	assert.Equal(t, int64(2), summary.TotalReceivers)
	require.NotEmpty(t, summary.ListingsByCity)
	assert.Equal(t, "Delhi", summary.ListingsByCity[0]["City"])
}
