package services

import (
	"fmt"
)

// CannedQuery is one entry in the analytics catalog. NeedsCity marks the
// queries that take a city as their single positional parameter.
type CannedQuery struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	SQL       string `json:"sql"`
	NeedsCity bool   `json:"needs_city"`
}

var cannedQueries = []CannedQuery{
	{
		ID:    1,
		Title: "Providers & receivers per city",
		SQL: `SELECT p.City AS City,
       COUNT(DISTINCT p.Provider_ID) AS Providers,
       (SELECT COUNT(DISTINCT r.Receiver_ID) FROM receivers r WHERE r.City = p.City) AS Receivers
FROM providers p GROUP BY p.City ORDER BY Providers DESC`,
	},
	{
		ID:    2,
		Title: "Provider types contributing most food",
		SQL:   `SELECT Provider_Type, COUNT(*) AS Listings FROM food_listings GROUP BY Provider_Type ORDER BY Listings DESC`,
	},
	{
		ID:        3,
		Title:     "Provider contacts in a city",
		SQL:       `SELECT Name, Contact FROM providers WHERE City = ?`,
		NeedsCity: true,
	},
	{
		ID:    4,
		Title: "Receivers with most claims",
		SQL: `SELECT r.Name, COUNT(*) AS Claims
FROM claims c JOIN receivers r ON c.Receiver_ID = r.Receiver_ID
GROUP BY r.Name ORDER BY Claims DESC`,
	},
	{
		ID:    5,
		Title: "Total quantity available",
		SQL:   `SELECT SUM(CAST(Quantity AS INTEGER)) AS TotalQuantity FROM food_listings`,
	},
	{
		ID:    6,
		Title: "Cities with most listings",
		SQL:   `SELECT Location AS City, COUNT(*) AS Listings FROM food_listings GROUP BY Location ORDER BY Listings DESC LIMIT 10`,
	},
	{
		ID:    7,
		Title: "Most common food types",
		SQL:   `SELECT Food_Type, COUNT(*) AS Count FROM food_listings GROUP BY Food_Type ORDER BY Count DESC`,
	},
	{
		ID:    8,
		Title: "Claims per food item",
		SQL: `SELECT f.Food_ID, f.Food_Name, COUNT(c.Claim_ID) AS ClaimCount
FROM food_listings f LEFT JOIN claims c ON f.Food_ID = c.Food_ID
GROUP BY f.Food_ID ORDER BY ClaimCount DESC`,
	},
	{
		ID:    9,
		Title: "Providers with most completed claims",
		SQL: `SELECT p.Name, COUNT(*) AS SuccessfulClaims
FROM claims c JOIN food_listings f ON c.Food_ID = f.Food_ID JOIN providers p ON f.Provider_ID = p.Provider_ID
WHERE c.Status = 'Completed'
GROUP BY p.Name ORDER BY SuccessfulClaims DESC`,
	},
	{
		ID:    10,
		Title: "Claim status percentages",
		SQL:   `SELECT Status, ROUND(100.0 * COUNT(*) / (SELECT COUNT(*) FROM claims), 2) AS Percentage FROM claims GROUP BY Status`,
	},
	{
		ID:    11,
		Title: "Average claimed quantity per receiver",
		SQL: `SELECT r.Name, AVG(CAST(f.Quantity AS FLOAT)) AS AvgQuantity
FROM claims c JOIN receivers r ON c.Receiver_ID = r.Receiver_ID JOIN food_listings f ON c.Food_ID = f.Food_ID
GROUP BY r.Name ORDER BY AvgQuantity DESC`,
	},
	{
		ID:    12,
		Title: "Most claimed meal types",
		SQL: `SELECT Meal_Type, COUNT(*) AS Count
FROM food_listings f JOIN claims c ON f.Food_ID = c.Food_ID
GROUP BY Meal_Type ORDER BY Count DESC`,
	},
	{
		ID:    13,
		Title: "Total quantity donated per provider",
		SQL: `SELECT p.Name, SUM(CAST(f.Quantity AS INTEGER)) AS TotalDonated
FROM food_listings f JOIN providers p ON f.Provider_ID = p.Provider_ID
GROUP BY p.Name ORDER BY TotalDonated DESC`,
	},
	{
		ID:    14,
		Title: "Listings expiring within 7 days",
		SQL:   `SELECT * FROM food_listings WHERE date(Expiry_Date) <= date('now', '+7 days')`,
	},
	{
		ID:    15,
		Title: "Top 10 food items by quantity",
		SQL: `SELECT Food_Name, SUM(CAST(Quantity AS INTEGER)) AS TotalQty
FROM food_listings GROUP BY Food_Name ORDER BY TotalQty DESC LIMIT 10`,
	},
}

// AnalyticsService serves the canned analytical queries of the dashboard.
type AnalyticsService struct {
	queryService *QueryService
}

func NewAnalyticsService(queryService *QueryService) *AnalyticsService {
	return &AnalyticsService{queryService: queryService}
}

func (s *AnalyticsService) Catalog() []CannedQuery {
	return cannedQueries
}

// Run executes a catalog entry by ID. City is required only for the entries
// flagged NeedsCity.
func (s *AnalyticsService) Run(id int, city string) (*QueryResult, error) {
	var query *CannedQuery
	for i := range cannedQueries {
		if cannedQueries[i].ID == id {
			query = &cannedQueries[i]
			break
		}
	}
	if query == nil {
		return nil, fmt.Errorf("unknown analytics query %d", id)
	}

	if query.NeedsCity {
		if city == "" {
			return nil, fmt.Errorf("query %d requires a city parameter", id)
		}
		return s.queryService.Read(query.SQL, city)
	}

	return s.queryService.Read(query.SQL)
}
