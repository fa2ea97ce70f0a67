package repositories

import (
	"strings"

	"github.com/Prem-himanshu/food-waste-management/internal/database"
)

type ProviderRepository struct {
	store *database.Store
}

func NewProviderRepository(store *database.Store) *ProviderRepository {
	return &ProviderRepository{store: store}
}

func (r *ProviderRepository) ExistsByID(id int64) (bool, error) {
	db, err := r.store.Open()
	if err != nil {
		return false, err
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM providers WHERE Provider_ID = ?)", id).Scan(&exists)
	return exists, err
}

func (r *ProviderRepository) Count() (int64, error) {
	db, err := r.store.Open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	var count int64
	err = db.QueryRow("SELECT COUNT(*) FROM providers").Scan(&count)
	return count, err
}

// Names returns the sorted distinct provider names, used to populate the
// provider filter.
func (r *ProviderRepository) Names() ([]string, error) {
	db, err := r.store.Open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT DISTINCT Name FROM providers WHERE Name IS NOT NULL ORDER BY Name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// IDsByNames resolves provider names to Provider_IDs for the listing filter.
func (r *ProviderRepository) IDsByNames(names []string) ([]int64, error) {
	if len(names) == 0 {
		return nil, nil
	}

	db, err := r.store.Open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(names)), ",")
	args := make([]any, len(names))
	for i, name := range names {
		args[i] = name
	}

	rows, err := db.Query("SELECT Provider_ID FROM providers WHERE Name IN ("+placeholders+")", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
