package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"Expronix-Backend/domain"
	"Expronix-Backend/entities"
	"Expronix-Backend/internal/api/presenters"
	"Expronix-Backend/internal/utils"
	"Expronix-Backend/pkg/inventory"
	"Expronix-Backend/pkg/profile"
	"Expronix-Backend/pkg/safety"
)

type SafetyHandler struct {
	inventoryStore *inventory.Store
	profileStore   *profile.Store
}

func NewSafetyHandler(inventoryStore *inventory.Store, profileStore *profile.Store) *SafetyHandler {
	return &SafetyHandler{
		inventoryStore: inventoryStore,
		profileStore:   profileStore,
	}
}

// CheckItem runs the conflict matcher for an arbitrary item description, such
// as a product the user is considering before it enters the inventory.
func (h *SafetyHandler) CheckItem(c *fiber.Ctx) error {
	var req domain.SafetyCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckSafety, err)
	}

	report := safety.MatchProfile(safety.ItemText{
		Name:        req.Name,
		Category:    req.Category,
		Ingredients: req.Ingredients,
	}, h.profileStore.Get())

	return presenters.SuccessResponse(c, toSafetyResponse(report), fiber.StatusOK, domain.MessageSuccessCheckSafety)
}

// CheckFoodItem runs the conflict matcher for a stored inventory item.
func (h *SafetyHandler) CheckFoodItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckSafety, domain.ErrParseUUID)
	}
	item, ok := h.inventoryStore.Get(id)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCheckSafety, domain.ErrFoodItemNotFound)
	}

	report := safety.MatchProfile(safety.ItemText{
		Name:        item.Name,
		Category:    item.Category,
		Ingredients: item.Ingredients,
	}, h.profileStore.Get())

	return presenters.SuccessResponse(c, toSafetyResponse(report), fiber.StatusOK, domain.MessageSuccessCheckSafety)
}

func toSafetyResponse(report safety.Report) domain.SafetyCheckResponse {
	resp := domain.SafetyCheckResponse{
		AllergyMatches:  []entities.Allergy{},
		HighestSeverity: string(report.HighestSeverity),
		HealthConcerns:  []domain.HealthConcernResponse{},
	}
	resp.AllergyMatches = append(resp.AllergyMatches, report.AllergyMatches...)
	for _, concern := range report.HealthConcerns {
		resp.HealthConcerns = append(resp.HealthConcerns, domain.HealthConcernResponse{
			Condition:       concern.Condition,
			MatchedKeywords: concern.MatchedKeywords,
		})
	}
	return resp
}
