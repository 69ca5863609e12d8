package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"Expronix-Backend/internal/api/handlers"
	"Expronix-Backend/internal/api/routes"
	"Expronix-Backend/internal/middleware"
	"Expronix-Backend/internal/utils"
	"Expronix-Backend/internal/utils/storage"
	"Expronix-Backend/pkg/assistant"
	"Expronix-Backend/pkg/inventory"
	"Expronix-Backend/pkg/jwt"
	"Expronix-Backend/pkg/profile"
	"Expronix-Backend/pkg/receipt"
	"Expronix-Backend/pkg/reminder"
	"Expronix-Backend/pkg/user"
)

func NewApp(db *gorm.DB) *fiber.App {
	utils.InitValidator()

	app := fiber.New(fiber.Config{
		AppName:   "Expronix",
		BodyLimit: 10 * 1024 * 1024,
	})

	if err := os.MkdirAll("./logs", 0o755); err == nil {
		if file, err := os.OpenFile("./logs/app.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644); err == nil {
			app.Use(logger.New(logger.Config{Output: file}))
		} else {
			app.Use(logger.New())
		}
	} else {
		app.Use(logger.New())
	}

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
	}))

	s3 := storage.NewAwsS3()
	jwtService := jwt.NewJWTService()

	inventoryStore := inventory.NewStore(inventory.NewRepository(db))
	inventoryStore.Load(context.Background())

	profileStore := profile.NewStore(profile.NewRepository(db))
	profileStore.Load(context.Background())

	assistantService := assistant.NewAssistantService()

	receiptService := receipt.NewReceiptService(receipt.NewReceiptRepository(db), inventoryStore, assistantService, s3)
	userService := user.NewUserService(user.NewUserRepository(db), jwtService)

	routeConfig := routes.Config{
		App:              app,
		UserHandler:      handlers.NewUserHandler(userService),
		FoodHandler:      handlers.NewFoodHandler(inventoryStore, receiptService),
		ProfileHandler:   handlers.NewProfileHandler(profileStore),
		SafetyHandler:    handlers.NewSafetyHandler(inventoryStore, profileStore),
		AssistantHandler: handlers.NewAssistantHandler(assistantService, inventoryStore, profileStore),
		Middleware:       middleware.NewMiddleware(),
		JWTService:       jwtService,
	}
	routeConfig.Setup()

	go runExpiryDigest(reminder.NewReminderService(), inventoryStore, profileStore)

	return app
}

// runExpiryDigest sends the expiry reminder email once a day. Whether a mail
// actually goes out is decided by the profile's notification settings.
func runExpiryDigest(reminderService reminder.ReminderService, inventoryStore *inventory.Store, profileStore *profile.Store) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for now := range ticker.C {
		sent, err := reminderService.SendExpiryDigest(profileStore.Get(), inventoryStore.List(), now)
		if err != nil {
			log.Printf("Error sending expiry digest: %v", err)
			continue
		}
		if sent {
			log.Println("Expiry digest sent")
		}
	}
}
