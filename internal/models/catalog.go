package models

// Service is one entry in the laundry-service catalog (wash & fold, dry
// cleaning and so on).
type Service struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       Price    `json:"price"`
	Active      bool     `json:"active"`
	Zipcodes    []string `json:"zipcodes"`
}
