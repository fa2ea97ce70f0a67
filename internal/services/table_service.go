package services

import (
	"fmt"
	"strings"

	"github.com/Prem-himanshu/food-waste-management/internal/database"
)

// TableService backs the dashboard's "show tables" view.
type TableService struct {
	store        *database.Store
	queryService *QueryService
}

func NewTableService(store *database.Store, queryService *QueryService) *TableService {
	return &TableService{
		store:        store,
		queryService: queryService,
	}
}

func (s *TableService) ListTables() ([]string, error) {
	return s.store.Tables()
}

const previewLimit = 200

// Preview returns the first rows of a table. The name must be a table that
// actually exists in the store; it is interpolated after that check because
// identifiers cannot be bound as parameters.
func (s *TableService) Preview(name string) (*QueryResult, error) {
	tables, err := s.store.Tables()
	if err != nil {
		return nil, err
	}

	var found bool
	for _, t := range tables {
		if strings.EqualFold(t, name) {
			name = t
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("table %s does not exist", name)
	}

	return s.queryService.Read(fmt.Sprintf(`SELECT * FROM "%s" LIMIT %d`, strings.ReplaceAll(name, `"`, `""`), previewLimit))
}
