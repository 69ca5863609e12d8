package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ExpiryStatus string

const (
	StatusFresh        ExpiryStatus = "Fresh"
	StatusExpiringSoon ExpiryStatus = "Expiring Soon"
	StatusExpired      ExpiryStatus = "Expired"
)

type StorageLocation string

const (
	LocationFridge  StorageLocation = "Fridge"
	LocationPantry  StorageLocation = "Pantry"
	LocationFreezer StorageLocation = "Freezer"
)

// Categories is the fixed set shown in category filters. Unknown values are
// stored as-is but excluded from enum-driven filters.
var Categories = []string{
	"Dairy", "Bakery", "Vegetables", "Fruits", "Meat", "Grains", "Snacks", "Beverages", "Other",
}

func IsKnownCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type FoodItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	ExpiryDate time.Time       `json:"expiry_date"`
	AddedDate  time.Time       `json:"added_date"`
	Location   StorageLocation `json:"location"`
	Quantity   string          `json:"quantity"`
	// Status is derived from ExpiryDate and recomputed by the inventory
	// store on every mutation and load. Callers never set it directly.
	Status        ExpiryStatus                `json:"status"`
	Price         float64                     `json:"price"`
	Image         string                      `json:"image,omitempty"`
	Ingredients   datatypes.JSONSlice[string] `json:"ingredients,omitempty"`
	Position      int                         `json:"-"`
	ReceiptScanID *string                     `json:"receipt_scan_id,omitempty"`

	Timestamp
}
