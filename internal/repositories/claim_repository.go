package repositories

import (
	"database/sql"
	"errors"

	"github.com/Prem-himanshu/food-waste-management/internal/database"
	"github.com/Prem-himanshu/food-waste-management/internal/models"
)

type ClaimRepository struct {
	store *database.Store
}

func NewClaimRepository(store *database.Store) *ClaimRepository {
	return &ClaimRepository{store: store}
}

func (r *ClaimRepository) GetByID(id int64) (*models.Claim, error) {
	db, err := r.store.Open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := `SELECT Claim_ID, Food_ID, Receiver_ID, Status, Timestamp
		FROM claims WHERE Claim_ID = ?`

	var claim models.Claim
	err = db.QueryRow(query, id).Scan(
		&claim.ClaimID,
		&claim.FoodID,
		&claim.ReceiverID,
		&claim.Status,
		&claim.Timestamp,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &claim, nil
}

// Insert stores a new claim and returns its assigned Claim_ID.
func (r *ClaimRepository) Insert(claim *models.Claim) (int64, error) {
	db, err := r.store.Open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	query := `INSERT INTO claims (Food_ID, Receiver_ID, Status, Timestamp)
		VALUES (?, ?, ?, ?)`

	result, err := db.Exec(query,
		claim.FoodID,
		claim.ReceiverID,
		claim.Status,
		claim.Timestamp,
	)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

func (r *ClaimRepository) UpdateStatus(id int64, status string) (int64, error) {
	db, err := r.store.Open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	result, err := db.Exec("UPDATE claims SET Status = ? WHERE Claim_ID = ?", status, id)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *ClaimRepository) List() ([]models.Claim, error) {
	db, err := r.store.Open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := `SELECT Claim_ID, Food_ID, Receiver_ID, Status, Timestamp
		FROM claims ORDER BY Claim_ID`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var claims []models.Claim
	for rows.Next() {
		var claim models.Claim
		if err := rows.Scan(
			&claim.ClaimID,
			&claim.FoodID,
			&claim.ReceiverID,
			&claim.Status,
			&claim.Timestamp,
		); err != nil {
			return nil, err
		}
		claims = append(claims, claim)
	}

	return claims, rows.Err()
}
