package services

import (
	"strings"
	"time"

	"github.com/Prem-himanshu/food-waste-management/internal/database"
)

// QueryService is the gateway every read and write goes through. Each call
// opens a fresh connection against the store and closes it on return. Query
// text is accepted as-is: this is a closed admin tool and the caller is
// trusted, but parameters are always bound positionally.
type QueryService struct {
	store *database.Store
}

func NewQueryService(store *database.Store) *QueryService {
	return &QueryService{store: store}
}

// QueryResult is a tabular result. Columns preserves the field order of the
// query; each row maps column name to value.
type QueryResult struct {
	Columns       []string         `json:"columns"`
	Rows          []map[string]any `json:"rows"`
	RowCount      int              `json:"row_count"`
	RowsAffected  int64            `json:"rows_affected,omitempty"`
	ExecutionTime int64            `json:"execution_time_ms"`
}

type ExecuteQueryRequest struct {
	Query  string `json:"query" binding:"required"`
	Params []any  `json:"params"`
}

// Read executes a query and returns its rows. A query matching zero rows
// returns an empty result, not an error.
func (s *QueryService) Read(query string, args ...any) (*QueryResult, error) {
	startTime := time.Now()

	db, err := s.store.Open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	resultRows := []map[string]any{}
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		rowMap := make(map[string]any, len(columns))
		for i, col := range columns {
			switch v := values[i].(type) {
			case []byte:
				rowMap[col] = string(v)
			case time.Time:
				rowMap[col] = v.Format(time.RFC3339)
			default:
				rowMap[col] = v
			}
		}
		resultRows = append(resultRows, rowMap)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &QueryResult{
		Columns:       columns,
		Rows:          resultRows,
		RowCount:      len(resultRows),
		ExecutionTime: time.Since(startTime).Milliseconds(),
	}, nil
}

// Write executes a single statement and commits immediately. No transaction
// spans multiple statements; whatever partial effect the statement itself had
// on failure is what remains.
func (s *QueryService) Write(stmt string, args ...any) (int64, error) {
	db, err := s.store.Open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	result, err := db.Exec(stmt, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// Execute routes an ad-hoc request to Read or Write based on the statement
// verb, the way the dashboard's raw SQL action does.
func (s *QueryService) Execute(req *ExecuteQueryRequest) (*QueryResult, error) {
	normalized := strings.ToUpper(strings.TrimSpace(req.Query))
	isSelect := strings.HasPrefix(normalized, "SELECT") ||
		strings.HasPrefix(normalized, "WITH") ||
		strings.HasPrefix(normalized, "EXPLAIN")

	if isSelect {
		return s.Read(req.Query, req.Params...)
	}

	startTime := time.Now()
	affected, err := s.Write(req.Query, req.Params...)
	if err != nil {
		return nil, err
	}
	return &QueryResult{
		RowsAffected:  affected,
		ExecutionTime: time.Since(startTime).Milliseconds(),
	}, nil
}
