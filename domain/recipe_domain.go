package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecipes      = "recipe suggestions retrieved successfully"
	MessageSuccessGenerateImage   = "food image generated successfully"
	MessageSuccessPredictCategory = "category predicted successfully"
	MessageSuccessAnalyzeImage    = "food image analyzed successfully"
	MessageSuccessGetInsight      = "insight retrieved successfully"
	MessageSuccessChat            = "chat response retrieved successfully"

	MessageFailedGetRecipes      = "failed to get recipe suggestions"
	MessageFailedGenerateImage   = "failed to generate food image"
	MessageFailedPredictCategory = "failed to predict category"
	MessageFailedAnalyzeImage    = "failed to analyze food image"
	MessageFailedGetInsight      = "failed to retrieve insight"
	MessageFailedChat            = "failed to get chat response"

	ErrGeminiAPIFailed = errors.New("gemini API processing failed")
	ErrNoIngredients   = errors.New("no ingredients available for recipe generation")
)

type (
	RecipeIngredient struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
	}

	Recipe struct {
		ID                      string             `json:"id"`
		Title                   string             `json:"title"`
		Image                   string             `json:"image,omitempty"`
		PrepTime                string             `json:"prepTime"`
		Servings                string             `json:"servings"`
		Difficulty              string             `json:"difficulty"`
		Description             string             `json:"description"`
		Rating                  float64            `json:"rating"`
		ReviewCount             int                `json:"reviewCount"`
		Ingredients             []RecipeIngredient `json:"ingredients"`
		Instructions            []string           `json:"instructions"`
		ExpiringIngredientsUsed []string           `json:"expiringIngredientsUsed"`
		AllergyNotes            string             `json:"allergyNotes,omitempty"`
	}

	RecipeSuggestionResponse struct {
		Recipes       []Recipe `json:"recipes"`
		TotalRecipes  int      `json:"total_recipes"`
		ExpiringItems int      `json:"expiring_items"`
	}

	GenerateImageRequest struct {
		FoodItemID string `json:"food_item_id" validate:"required,uuid"`
	}

	GenerateImageResponse struct {
		Image string `json:"image,omitempty"`
	}

	PredictCategoryRequest struct {
		Name string `json:"name" validate:"required,min=2"`
	}

	PredictCategoryResponse struct {
		Category string `json:"category"`
	}

	AnalyzeImageResponse struct {
		Report string `json:"report"`
	}

	ChatRequest struct {
		Message string `json:"message" validate:"required"`
	}

	ChatResponse struct {
		Reply string `json:"reply"`
	}

	InsightResponse struct {
		Insight string `json:"insight"`
	}
)
