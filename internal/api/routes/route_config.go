package routes

import (
	"github.com/gofiber/fiber/v2"

	"Expronix-Backend/internal/api/handlers"
	"Expronix-Backend/internal/middleware"
	"Expronix-Backend/pkg/jwt"
)

type Config struct {
	App              *fiber.App
	UserHandler      *handlers.UserHandler
	FoodHandler      *handlers.FoodHandler
	ProfileHandler   *handlers.ProfileHandler
	SafetyHandler    *handlers.SafetyHandler
	AssistantHandler *handlers.AssistantHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())

	c.App.Get("/ping", func(ctx *fiber.Ctx) error {
		return ctx.SendString("pong")
	})

	api := c.App.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", c.UserHandler.Register)
	auth.Post("/login", c.UserHandler.Login)

	protected := api.Group("", c.Middleware.AuthMiddleware(c.JWTService))

	food := protected.Group("/food-items")
	food.Get("", c.FoodHandler.GetFoodItems)
	food.Post("", c.FoodHandler.AddFoodItem)
	food.Put("/:id", c.FoodHandler.UpdateFoodItem)
	food.Delete("/:id", c.FoodHandler.DeleteFoodItem)
	food.Get("/priority", c.FoodHandler.GetPriorityList)
	food.Get("/dashboard", c.FoodHandler.GetDashboardStats)
	food.Get("/export", c.FoodHandler.ExportInventory)

	receipts := protected.Group("/receipts")
	receipts.Post("/upload", c.FoodHandler.UploadReceipt)
	receipts.Get("/:scan_id", c.FoodHandler.GetScanResult)
	receipts.Post("/items", c.FoodHandler.SaveScannedItems)

	profile := protected.Group("/profile")
	profile.Get("", c.ProfileHandler.GetProfile)
	profile.Put("", c.ProfileHandler.UpdateProfile)
	profile.Post("/family", c.ProfileHandler.AddFamilyMember)
	profile.Put("/family/:id", c.ProfileHandler.UpdateFamilyMember)
	profile.Delete("/family/:id", c.ProfileHandler.DeleteFamilyMember)

	safetyGroup := protected.Group("/safety")
	safetyGroup.Post("/check", c.SafetyHandler.CheckItem)
	safetyGroup.Get("/food-items/:id", c.SafetyHandler.CheckFoodItem)

	assistantGroup := protected.Group("/assistant")
	assistantGroup.Get("/recipes", c.AssistantHandler.SuggestRecipes)
	assistantGroup.Post("/food-image", c.AssistantHandler.GenerateFoodImage)
	assistantGroup.Post("/predict-category", c.AssistantHandler.PredictCategory)
	assistantGroup.Post("/analyze-image", c.AssistantHandler.AnalyzeFoodImage)
	assistantGroup.Get("/insights/waste", c.AssistantHandler.GetWasteInsight)
	assistantGroup.Get("/insights/budget", c.AssistantHandler.GetBudgetInsight)
	assistantGroup.Post("/chat", c.AssistantHandler.Chat)
}
