package database

import (
	"database/sql"
	"fmt"
	"sort"

	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// RequiredTables are the tables every data operation depends on. The
// readiness check refuses to serve until all of them exist.
var RequiredTables = []string{"providers", "receivers", "food_listings", "claims"}

// Store is a handle on the file-backed SQLite database. Every operation opens
// a fresh connection against the file and closes it when the call returns;
// there is no pooling and no state shared across calls.
type Store struct {
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

func (s *Store) Open() (*sql.DB, error) {
	db, err := sql.Open(DriverName, s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", s.Path, err)
	}
	return db, nil
}

// Tables returns the names of all tables currently in the store.
func (s *Store) Tables() ([]string, error) {
	db, err := s.Open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// MissingTables reports which of the required tables are absent, sorted by
// name so the unready message is stable.
func (s *Store) MissingTables() ([]string, error) {
	tables, err := s.Tables()
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(tables))
	for _, t := range tables {
		present[t] = true
	}

	var missing []string
	for _, required := range RequiredTables {
		if !present[required] {
			missing = append(missing, required)
		}
	}
	sort.Strings(missing)
	return missing, nil
}
