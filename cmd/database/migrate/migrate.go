package migrate

import (
	"time"

	"gorm.io/gorm"

	"Expronix-Backend/entities"
	"Expronix-Backend/pkg/inventory"
)

func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	firstRun := !db.Migrator().HasTable(&entities.FoodItem{})

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.UserProfile{},
		&entities.FoodItem{},
		&entities.ReceiptScan{},
	); err != nil {
		return err
	}

	// Seed the starter inventory only when the table was just created. An
	// inventory the user emptied keeps its table and stays empty.
	if firstRun {
		seed := inventory.SeedItems(time.Now())
		for i := range seed {
			seed[i].Position = i
		}
		if err := db.Create(&seed).Error; err != nil {
			return err
		}
	}
	return nil
}
