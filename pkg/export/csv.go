package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"Expronix-Backend/entities"
)

var csvHeaders = []string{"Name", "Category", "Quantity", "Location", "Expiry Date", "Status"}

// InventoryCSV renders the inventory report in store order.
func InventoryCSV(items []entities.FoodItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeaders); err != nil {
		return nil, err
	}
	for _, item := range items {
		record := []string{
			item.Name,
			item.Category,
			item.Quantity,
			string(item.Location),
			item.ExpiryDate.Format("2006-01-02"),
			string(item.Status),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReportFileName names the download like the mobile app does.
func ReportFileName(now time.Time) string {
	return fmt.Sprintf("Expronix_Report_%s.csv", now.Format("2006-01-02"))
}
