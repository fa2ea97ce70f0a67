package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyticsService(t *testing.T) *AnalyticsService {
	t.Helper()
	return NewAnalyticsService(NewQueryService(seedStore(t)))
}

func TestCatalogHasFifteenQueries(t *testing.T) {
	svc := newAnalyticsService(t)

	catalog := svc.Catalog()
	require.Len(t, catalog, 15)
	for i, q := range catalog {
		assert.Equal(t, i+1, q.ID)
		assert.NotEmpty(t, q.Title)
		assert.NotEmpty(t, q.SQL)
	}
}

func TestRunProvidersPerCity(t *testing.T) {
	svc := newAnalyticsService(t)

	result, err := svc.Run(1, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"City", "Providers", "Receivers"}, result.Columns)
	assert.Equal(t, 2, result.RowCount)
}

func TestRunCityParameterQuery(t *testing.T) {
	svc := newAnalyticsService(t)

	result, err := svc.Run(3, "Delhi")
	require.NoError(t, err)
	require.Equal(t, 1, result.RowCount)
	assert.Equal(t, "A Co", result.Rows[0]["Name"])

	_, err = svc.Run(3, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a city")
}

func TestRunCompletedClaimsPerProvider(t *testing.T) {
	svc := newAnalyticsService(t)

	// Fixture has one completed claim on Rice, provided by A Co.
	result, err := svc.Run(9, "")
	require.NoError(t, err)
	require.Equal(t, 1, result.RowCount)
	assert.Equal(t, "A Co", result.Rows[0]["Name"])
	assert.EqualValues(t, 1, result.Rows[0]["SuccessfulClaims"])
}

func TestRunUnknownQuery(t *testing.T) {
	svc := newAnalyticsService(t)

	_, err := svc.Run(99, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown analytics query")
}

func TestEveryCatalogEntryExecutes(t *testing.T) {
	svc := newAnalyticsService(t)

	for _, q := range svc.Catalog() {
		city := ""
		if q.NeedsCity {
			city = "Delhi"
		}
		_, err := svc.Run(q.ID, city)
		assert.NoError(t, err, "query %d: %s", q.ID, q.Title)
	}
}
