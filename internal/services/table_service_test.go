package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTables(t *testing.T) {
	store := seedStore(t)
	svc := NewTableService(store, NewQueryService(store))

	tables, err := svc.ListTables()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"providers", "receivers", "food_listings", "claims"}, tables)
}

func TestPreviewTable(t *testing.T) {
	store := seedStore(t)
	svc := NewTableService(store, NewQueryService(store))

	result, err := svc.Preview("food_listings")
	require.NoError(t, err)
	assert.Equal(t, 3, result.RowCount)
	assert.Contains(t, result.Columns, "Food_Name")
}

func TestPreviewUnknownTable(t *testing.T) {
	store := seedStore(t)
	svc := NewTableService(store, NewQueryService(store))

	_, err := svc.Preview("users; DROP TABLE providers")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}
