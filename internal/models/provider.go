package models

// Provider matches the providers table loaded from the source dataset.
// Columns: Provider_ID, Name, Type, Address, City, Contact
type Provider struct {
	ProviderID int64  `json:"provider_id"`
	Name       string `json:"name"`
	Type       string `json:"type,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city"`
	Contact    string `json:"contact"`
}
