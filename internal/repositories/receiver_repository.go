package repositories

import (
	"github.com/Prem-himanshu/food-waste-management/internal/database"
)

type ReceiverRepository struct {
	store *database.Store
}

func NewReceiverRepository(store *database.Store) *ReceiverRepository {
	return &ReceiverRepository{store: store}
}

func (r *ReceiverRepository) ExistsByID(id int64) (bool, error) {
	db, err := r.store.Open()
	if err != nil {
		return false, err
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM receivers WHERE Receiver_ID = ?)", id).Scan(&exists)
	return exists, err
}

func (r *ReceiverRepository) Count() (int64, error) {
	db, err := r.store.Open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	var count int64
	err = db.QueryRow("SELECT COUNT(*) FROM receivers").Scan(&count)
	return count, err
}
