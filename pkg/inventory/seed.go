package inventory

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"Expronix-Backend/entities"
)

// SeedItems is the starter collection written once at migration time, when
// the food item table is first created. Expiry dates are relative to now so
// the seed exercises every urgency bucket on first run.
func SeedItems(now time.Time) []entities.FoodItem {
	item := func(name, category string, daysOut int, location entities.StorageLocation, quantity string, price float64) entities.FoodItem {
		return entities.FoodItem{
			ID:          uuid.New(),
			Name:        name,
			Category:    category,
			ExpiryDate:  now.AddDate(0, 0, daysOut),
			AddedDate:   now,
			Location:    location,
			Quantity:    quantity,
			Price:       price,
			Ingredients: datatypes.NewJSONSlice([]string{name}),
		}
	}

	return []entities.FoodItem{
		item("Fresh Milk", "Dairy", 1, entities.LocationFridge, "1 Liter", 4.50),
		item("Organic Eggs", "Dairy", 4, entities.LocationFridge, "12 pieces", 6.50),
		item("Whole Wheat Bread", "Bakery", 0, entities.LocationPantry, "1 Loaf", 3.80),
		item("Fresh Spinach", "Vegetables", 2, entities.LocationFridge, "200g", 2.50),
		item("Greek Yogurt", "Dairy", 10, entities.LocationFridge, "500g", 5.20),
		item("Avocados", "Vegetables", 5, entities.LocationPantry, "3 units", 6.00),
	}
}
