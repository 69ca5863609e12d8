package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Expronix-Backend/entities"
)

func TestInventoryCSV(t *testing.T) {
	items := []entities.FoodItem{
		{
			Name:       "Fresh Milk",
			Category:   "Dairy",
			Quantity:   "1 Liter",
			Location:   entities.LocationFridge,
			ExpiryDate: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
			Status:     entities.StatusExpiringSoon,
		},
		{
			Name:       "Herbs, dried",
			Category:   "Other",
			Quantity:   "20g",
			Location:   entities.LocationPantry,
			ExpiryDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			Status:     entities.StatusFresh,
		},
	}

	out, err := InventoryCSV(items)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Category,Quantity,Location,Expiry Date,Status", lines[0])
	assert.Equal(t, "Fresh Milk,Dairy,1 Liter,Fridge,2025-06-16,Expiring Soon", lines[1])
	assert.Equal(t, `"Herbs, dried",Other,20g,Pantry,2026-01-01,Fresh`, lines[2])
}

func TestInventoryCSVEmpty(t *testing.T) {
	out, err := InventoryCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "Name,Category,Quantity,Location,Expiry Date,Status\n", string(out))
}

func TestReportFileName(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "Expronix_Report_2025-06-15.csv", ReportFileName(now))
}
