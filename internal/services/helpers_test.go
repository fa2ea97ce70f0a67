package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Prem-himanshu/food-waste-management/internal/database"
	"github.com/Prem-himanshu/food-waste-management/internal/loader"
)

const (
	providersCSV = "Provider_ID,Name,City,Contact\n" +
		"1,A Co,Delhi,x@a.com\n" +
		"2,B Co,Mumbai,y@b.com\n"

	receiversCSV = "Receiver_ID,Name,City\n" +
		"1,Shelter One,Delhi\n" +
		"2,Shelter Two,Mumbai\n"

	listingsCSV = "Food_ID,Food_Name,Quantity,Expiry_Date,Provider_ID,Provider_Type,Location,Food_Type,Meal_Type\n" +
		"1,Rice,10,2030-01-01,1,Restaurant,Delhi,Vegetarian,Lunch\n" +
		"2,Bread,5,,2,Bakery,Mumbai,Vegan,Breakfast\n" +
		"3,Curry,8,2030-02-01,1,Restaurant,Delhi,Non-Vegetarian,Dinner\n"

	claimsCSV = "Claim_ID,Food_ID,Receiver_ID,Status,Timestamp\n" +
		"1,1,1,Completed,2030-01-01T10:00:00Z\n" +
		"2,2,2,Pending,2030-01-02T10:00:00Z\n"
)

func writeFixtures(t *testing.T, dir string) {
	t.Helper()
	fixtures := map[string]string{
		"providers_list.csv":     providersCSV,
		"receivers_list.csv":     receiversCSV,
		"food_listings_data.csv": listingsCSV,
		"claims_data.csv":        claimsCSV,
	}
	for name, content := range fixtures {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func writeRaw(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

// seedStore loads the fixture dataset into an isolated store file.
func seedStore(t *testing.T) *database.Store {
	t.Helper()
	sourceDir := t.TempDir()
	writeFixtures(t, sourceDir)

	store := database.NewStore(filepath.Join(t.TempDir(), "food_waste.db"))
	_, err := loader.New(store, sourceDir).Load()
	require.NoError(t, err)
	return store
}
