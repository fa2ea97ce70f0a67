package models

// Claim statuses. Every new claim starts as Pending; Status is the only field
// that is ever updated afterwards.
const (
	ClaimStatusPending   = "Pending"
	ClaimStatusCompleted = "Completed"
	ClaimStatusCancelled = "Cancelled"
)

var ClaimStatuses = []string{ClaimStatusPending, ClaimStatusCompleted, ClaimStatusCancelled}

// Claim matches the claims table. Timestamp is the RFC3339 creation instant,
// kept as text the way the dataset stores it.
type Claim struct {
	ClaimID    int64  `json:"claim_id"`
	FoodID     int64  `json:"food_id"`
	ReceiverID int64  `json:"receiver_id"`
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
}
