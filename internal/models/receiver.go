package models

// Receiver matches the receivers table loaded from the source dataset.
type Receiver struct {
	ReceiverID int64  `json:"receiver_id"`
	Name       string `json:"name"`
	Type       string `json:"type,omitempty"`
	City       string `json:"city"`
	Contact    string `json:"contact,omitempty"`
}
