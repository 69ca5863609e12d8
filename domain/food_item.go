package domain

import (
	"errors"
	"time"

	"Expronix-Backend/entities"
)

var (
	MessageSuccessAddFoodItem      = "food item added successfully"
	MessageSuccessUpdateFoodItem   = "food item updated successfully"
	MessageSuccessDeleteFoodItem   = "food item deleted successfully"
	MessageSuccessGetFoodItems     = "food items retrieved successfully"
	MessageSuccessGetPriorityList  = "priority consumption list retrieved successfully"
	MessageSuccessUploadReceipt    = "receipt uploaded successfully"
	MessageSuccessSaveScannedItems = "scanned items saved successfully"
	MessageSuccessGetDashboard     = "dashboard statistics retrieved successfully"
	MessageSuccessExportInventory  = "inventory exported successfully"

	MessageFailedAddFoodItem      = "failed to add food item"
	MessageFailedUpdateFoodItem   = "failed to update food item"
	MessageFailedDeleteFoodItem   = "failed to delete food item"
	MessageFailedGetFoodItems     = "failed to retrieve food items"
	MessageFailedUploadReceipt    = "failed to upload receipt"
	MessageFailedProcessReceipt   = "failed to process receipt"
	MessageFailedSaveScannedItems = "failed to save scanned items"
	MessageFailedGetDashboard     = "failed to retrieve dashboard statistics"
	MessageFailedExportInventory  = "failed to export inventory"

	ErrFoodItemNotFound        = errors.New("food item not found")
	ErrInvalidExpiryDate       = errors.New("invalid expiry date")
	ErrInvalidAddedDate        = errors.New("invalid added date")
	ErrReceiptProcessingFailed = errors.New("receipt processing failed")
	ErrInvalidReceiptScan      = errors.New("invalid receipt scan ID")
)

type (
	AddFoodItemRequest struct {
		Name        string   `json:"name" validate:"required"`
		Category    string   `json:"category" validate:"required"`
		ExpiryDate  string   `json:"expiry_date" validate:"required"`
		Location    string   `json:"location" validate:"required"`
		Quantity    string   `json:"quantity" validate:"required"`
		Price       float64  `json:"price" validate:"omitempty,gte=0"`
		Image       string   `json:"image"`
		Ingredients []string `json:"ingredients"`
	}

	UpdateFoodItemRequest struct {
		Name        *string  `json:"name"`
		Category    *string  `json:"category"`
		ExpiryDate  *string  `json:"expiry_date"`
		Location    *string  `json:"location"`
		Quantity    *string  `json:"quantity"`
		Price       *float64 `json:"price" validate:"omitempty,gte=0"`
		Image       *string  `json:"image"`
		Ingredients []string `json:"ingredients"`
	}

	FoodItemResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Category    string    `json:"category"`
		ExpiryDate  time.Time `json:"expiry_date"`
		AddedDate   time.Time `json:"added_date"`
		Location    string    `json:"location"`
		Quantity    string    `json:"quantity"`
		Status      string    `json:"status"`
		Price       float64   `json:"price"`
		Image       string    `json:"image,omitempty"`
		Ingredients []string  `json:"ingredients,omitempty"`
	}

	PriorityItemResponse struct {
		FoodItemResponse
		Score int    `json:"score"`
		Tier  string `json:"tier"`
		Label string `json:"label"`
	}

	ScannedItemRequest struct {
		Name       string  `json:"name" validate:"required"`
		Category   string  `json:"category"`
		ExpiryDate string  `json:"expiry_date" validate:"required"`
		Quantity   string  `json:"quantity" validate:"required"`
		Price      float64 `json:"price" validate:"omitempty,gte=0"`
	}

	SaveScannedItemsRequest struct {
		ScanID string               `json:"scan_id" validate:"required,uuid"`
		Items  []ScannedItemRequest `json:"items" validate:"required,dive"`
	}

	UploadReceiptResponse struct {
		ScanID   string `json:"scan_id"`
		ImageURL string `json:"image_url"`
		Status   string `json:"status"`
	}

	DashboardStatsResponse struct {
		TotalItems     int     `json:"total_items"`
		FreshItems     int     `json:"fresh_items"`
		ExpiringItems  int     `json:"expiring_items"`
		ExpiredItems   int     `json:"expired_items"`
		InventoryValue float64 `json:"inventory_value"`
		WastedValue    float64 `json:"wasted_value"`
	}
)

func ToFoodItemResponse(item entities.FoodItem) FoodItemResponse {
	return FoodItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Category:    item.Category,
		ExpiryDate:  item.ExpiryDate,
		AddedDate:   item.AddedDate,
		Location:    string(item.Location),
		Quantity:    item.Quantity,
		Status:      string(item.Status),
		Price:       item.Price,
		Image:       item.Image,
		Ingredients: item.Ingredients,
	}
}
