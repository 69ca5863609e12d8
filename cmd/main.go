package main

import (
	"log"

	"Expronix-Backend/cmd/config"
	"Expronix-Backend/cmd/database/migrate"
	"Expronix-Backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migrate.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app := config.NewApp(db)
	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
