package entities

import (
	"github.com/google/uuid"
)

type ReceiptScan struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ImageURL   string    `json:"image_url"`
	Status     string    `json:"status"` // "Pending", "Processed", "Failed", "Completed"
	OcrResults string    `json:"ocr_results,omitempty" gorm:"type:text"`

	Timestamp
}
