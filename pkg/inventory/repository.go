package inventory

import (
	"context"

	"gorm.io/gorm"

	"Expronix-Backend/entities"
)

type repository struct {
	db *gorm.DB
}

// NewRepository returns a gorm-backed Persister. The whole snapshot is
// written per mutation, mirroring the single-record layout the app's state
// model assumes; Position keeps list order stable across loads.
func NewRepository(db *gorm.DB) Persister {
	return &repository{db: db}
}

func (r *repository) SaveInventory(ctx context.Context, items []entities.FoodItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(&entities.FoodItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].Position = i
		}
		return tx.Create(&items).Error
	})
}

func (r *repository) LoadInventory(ctx context.Context) ([]entities.FoodItem, error) {
	var items []entities.FoodItem
	if err := r.db.WithContext(ctx).Order("position asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
