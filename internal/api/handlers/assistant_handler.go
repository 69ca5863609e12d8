package handlers

import (
	"encoding/base64"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"Expronix-Backend/domain"
	"Expronix-Backend/internal/api/presenters"
	"Expronix-Backend/internal/utils"
	"Expronix-Backend/pkg/assistant"
	"Expronix-Backend/pkg/inventory"
	"Expronix-Backend/pkg/profile"
)

type AssistantHandler struct {
	assistantService assistant.AssistantService
	inventoryStore   *inventory.Store
	profileStore     *profile.Store
}

func NewAssistantHandler(assistantService assistant.AssistantService, inventoryStore *inventory.Store, profileStore *profile.Store) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
		inventoryStore:   inventoryStore,
		profileStore:     profileStore,
	}
}

func (h *AssistantHandler) SuggestRecipes(c *fiber.Ctx) error {
	result, err := h.assistantService.SuggestRecipes(c.Context(), h.inventoryStore.List(), h.profileStore.Get())
	if err != nil {
		status := fiber.StatusInternalServerError
		if err == domain.ErrNoIngredients {
			status = fiber.StatusBadRequest
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetRecipes, err)
	}
	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

// GenerateFoodImage asks the model for a product photo of the item and, when
// one comes back, saves the URL onto the item. A miss is a success with an
// empty image, not an error.
func (h *AssistantHandler) GenerateFoodImage(c *fiber.Ctx) error {
	var req domain.GenerateImageRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateImage, err)
	}

	id, err := uuid.Parse(req.FoodItemID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateImage, domain.ErrParseUUID)
	}
	item, ok := h.inventoryStore.Get(id)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGenerateImage, domain.ErrFoodItemNotFound)
	}

	imageURL, err := h.assistantService.GenerateFoodImage(c.Context(), item.Name)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGenerateImage, err)
	}
	if imageURL != "" {
		if _, err := h.inventoryStore.Update(c.Context(), id, inventory.ItemPatch{Image: &imageURL}); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGenerateImage, err)
		}
	}
	return presenters.SuccessResponse(c, domain.GenerateImageResponse{Image: imageURL}, fiber.StatusOK, domain.MessageSuccessGenerateImage)
}

func (h *AssistantHandler) PredictCategory(c *fiber.Ctx) error {
	var req domain.PredictCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPredictCategory, err)
	}

	category := h.assistantService.PredictCategory(c.Context(), req.Name)
	return presenters.SuccessResponse(c, domain.PredictCategoryResponse{Category: category}, fiber.StatusOK, domain.MessageSuccessPredictCategory)
}

// AnalyzeFoodImage inspects an uploaded photo of food or groceries and
// returns an identification and freshness report.
func (h *AssistantHandler) AnalyzeFoodImage(c *fiber.Ctx) error {
	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeImage, err)
	}

	file, err := image.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeImage, err)
	}
	defer file.Close()
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnalyzeImage, err)
	}

	report, err := h.assistantService.AnalyzeFoodImage(
		c.Context(),
		base64.StdEncoding.EncodeToString(fileBytes),
		image.Header.Get("Content-Type"),
	)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAnalyzeImage, err)
	}
	return presenters.SuccessResponse(c, domain.AnalyzeImageResponse{Report: report}, fiber.StatusOK, domain.MessageSuccessAnalyzeImage)
}

func (h *AssistantHandler) GetWasteInsight(c *fiber.Ctx) error {
	insight := h.assistantService.WasteInsight(c.Context(), h.inventoryStore.List())
	return presenters.SuccessResponse(c, domain.InsightResponse{Insight: insight}, fiber.StatusOK, domain.MessageSuccessGetInsight)
}

func (h *AssistantHandler) GetBudgetInsight(c *fiber.Ctx) error {
	insight := h.assistantService.BudgetInsight(c.Context(), h.inventoryStore.List())
	return presenters.SuccessResponse(c, domain.InsightResponse{Insight: insight}, fiber.StatusOK, domain.MessageSuccessGetInsight)
}

func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	var req domain.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedChat, err)
	}

	reply, err := h.assistantService.Chat(c.Context(), req.Message, h.inventoryStore.List(), h.profileStore.Get())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedChat, err)
	}
	return presenters.SuccessResponse(c, domain.ChatResponse{Reply: reply}, fiber.StatusOK, domain.MessageSuccessChat)
}
