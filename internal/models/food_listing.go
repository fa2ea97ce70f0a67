package models

// Food type and meal type enumerations carried by every listing.
var (
	FoodTypes = []string{"Vegetarian", "Non-Vegetarian", "Vegan", "Other"}
	MealTypes = []string{"Breakfast", "Lunch", "Dinner", "Snacks", "Other"}
)

// FoodListing matches the food_listings table loaded from the source dataset.
// Expiry_Date and Provider_Type are nullable in the data.
type FoodListing struct {
	FoodID       int64   `json:"food_id"`
	FoodName     string  `json:"food_name"`
	Quantity     int64   `json:"quantity"`
	ExpiryDate   *string `json:"expiry_date,omitempty"`
	ProviderID   *int64  `json:"provider_id,omitempty"`
	ProviderType *string `json:"provider_type,omitempty"`
	Location     string  `json:"location"`
	FoodType     string  `json:"food_type"`
	MealType     string  `json:"meal_type"`
}
