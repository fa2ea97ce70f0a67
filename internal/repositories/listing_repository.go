package repositories

import (
	"fmt"

	"github.com/Prem-himanshu/food-waste-management/internal/database"
	"github.com/Prem-himanshu/food-waste-management/internal/models"
)

type ListingRepository struct {
	store *database.Store
}

func NewListingRepository(store *database.Store) *ListingRepository {
	return &ListingRepository{store: store}
}

// Insert stores a new listing and returns its assigned Food_ID.
func (r *ListingRepository) Insert(listing *models.FoodListing) (int64, error) {
	db, err := r.store.Open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	query := `INSERT INTO food_listings
		(Food_Name, Quantity, Expiry_Date, Provider_ID, Provider_Type, Location, Food_Type, Meal_Type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := db.Exec(query,
		listing.FoodName,
		listing.Quantity,
		listing.ExpiryDate,
		listing.ProviderID,
		listing.ProviderType,
		listing.Location,
		listing.FoodType,
		listing.MealType,
	)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

func (r *ListingRepository) ExistsByID(id int64) (bool, error) {
	db, err := r.store.Open()
	if err != nil {
		return false, err
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM food_listings WHERE Food_ID = ?)", id).Scan(&exists)
	return exists, err
}

// TotalQuantity sums quantities across all listings. The cast mirrors the
// dataset, where Quantity can arrive as text.
func (r *ListingRepository) TotalQuantity() (int64, error) {
	db, err := r.store.Open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	var total int64
	err = db.QueryRow("SELECT COALESCE(SUM(CAST(Quantity AS INTEGER)), 0) FROM food_listings").Scan(&total)
	return total, err
}

// DistinctValues returns the sorted distinct non-null values of one of the
// filterable listing columns.
func (r *ListingRepository) DistinctValues(column string) ([]string, error) {
	allowed := map[string]string{
		"location":  "Location",
		"food_type": "Food_Type",
		"meal_type": "Meal_Type",
	}
	col, ok := allowed[column]
	if !ok {
		return nil, fmt.Errorf("column %s is not filterable", column)
	}

	db, err := r.store.Open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := "SELECT DISTINCT " + col + " FROM food_listings WHERE " + col + " IS NOT NULL ORDER BY " + col
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
