package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prem-himanshu/food-waste-management/internal/database"
	"github.com/Prem-himanshu/food-waste-management/internal/handlers"
	"github.com/Prem-himanshu/food-waste-management/internal/loader"
	"github.com/Prem-himanshu/food-waste-management/internal/repositories"
	"github.com/Prem-himanshu/food-waste-management/internal/routes"
	"github.com/Prem-himanshu/food-waste-management/internal/services"
)

func writeFixtures(t *testing.T, dir string) {
	t.Helper()
	fixtures := map[string]string{
		"providers_list.csv":     "Provider_ID,Name,City,Contact\n1,A Co,Delhi,x@a.com\n",
		"receivers_list.csv":     "Receiver_ID,Name,City\n1,Shelter One,Delhi\n",
		"food_listings_data.csv": "Food_ID,Food_Name,Quantity,Expiry_Date,Provider_ID,Provider_Type,Location,Food_Type,Meal_Type\n1,Rice,10,2030-01-01,1,Restaurant,Delhi,Vegetarian,Lunch\n",
		"claims_data.csv":        "Claim_ID,Food_ID,Receiver_ID,Status,Timestamp\n1,1,1,Pending,2030-01-01T10:00:00Z\n",
	}
	for name, content := range fixtures {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

// newTestRouter wires the API the way the server does, against an isolated
// store and source directory.
func newTestRouter(t *testing.T, sourceDir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := database.NewStore(filepath.Join(t.TempDir(), "food_waste.db"))
	ld := loader.New(store, sourceDir)
	readiness := services.NewReadinessService(store, ld)

	listingRepo := repositories.NewListingRepository(store)
	providerRepo := repositories.NewProviderRepository(store)
	receiverRepo := repositories.NewReceiverRepository(store)
	claimRepo := repositories.NewClaimRepository(store)
	queryService := services.NewQueryService(store)

	router := gin.New()
	routes.RegisterRoutes(router, readiness,
		handlers.NewListingHandler(services.NewListingService(listingRepo, providerRepo, receiverRepo, queryService)),
		handlers.NewClaimHandler(services.NewClaimService(claimRepo, listingRepo, receiverRepo)),
		handlers.NewAnalyticsHandler(services.NewAnalyticsService(queryService)),
		handlers.NewQueryHandler(queryService),
		handlers.NewTableHandler(services.NewTableService(store, queryService)),
		handlers.NewAdminHandler(readiness),
	)
	return router
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, t.TempDir())
	w := doRequest(router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDataRoutesRefuseWhenUnready(t *testing.T) {
	router := newTestRouter(t, t.TempDir())

	w := doRequest(router, http.MethodGet, "/api/v1/listings", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	for _, table := range database.RequiredTables {
		assert.Contains(t, w.Body.String(), table)
	}
}

func TestClaimLifecycleOverHTTP(t *testing.T) {
	sourceDir := t.TempDir()
	writeFixtures(t, sourceDir)
	router := newTestRouter(t, sourceDir)

	w := doRequest(router, http.MethodPost, "/api/v1/claims", gin.H{"food_id": 1, "receiver_id": 1})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Pending"`)

	var created struct {
		Data struct {
			ClaimID int64 `json:"claim_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.Data.ClaimID)

	path := "/api/v1/claims/2/status"
	w = doRequest(router, http.MethodPatch, path, gin.H{"status": "Completed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Completed"`)

	// Idempotent: the same update succeeds again with the same outcome.
	w = doRequest(router, http.MethodPatch, path, gin.H{"status": "Completed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Completed"`)
}

func TestAdhocQueryOverHTTP(t *testing.T) {
	sourceDir := t.TempDir()
	writeFixtures(t, sourceDir)
	router := newTestRouter(t, sourceDir)

	w := doRequest(router, http.MethodPost, "/api/v1/query/execute", gin.H{
		"query":  "SELECT Name FROM providers WHERE City = ?",
		"params": []any{"Delhi"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "A Co")

	w = doRequest(router, http.MethodPost, "/api/v1/query/execute", gin.H{
		"query": "SELECT * FROM no_such_table",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReloadEndpointBypassesReadiness(t *testing.T) {
	sourceDir := t.TempDir()
	router := newTestRouter(t, sourceDir)

	// Nothing to load yet.
	w := doRequest(router, http.MethodPost, "/api/v1/admin/reload", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	writeFixtures(t, sourceDir)
	w = doRequest(router, http.MethodPost, "/api/v1/admin/reload", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/tables", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "food_listings")
}
