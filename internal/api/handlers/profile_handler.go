package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"Expronix-Backend/domain"
	"Expronix-Backend/entities"
	"Expronix-Backend/internal/api/presenters"
	"Expronix-Backend/internal/utils"
	"Expronix-Backend/pkg/profile"
)

type ProfileHandler struct {
	store *profile.Store
}

func NewProfileHandler(store *profile.Store) *ProfileHandler {
	return &ProfileHandler{store: store}
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.store.Get(), fiber.StatusOK, domain.MessageSuccessGetProfile)
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var req domain.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProfile, err)
	}

	updated, err := h.store.Update(c.Context(), profile.Patch{
		Name:             req.Name,
		Email:            req.Email,
		Age:              req.Age,
		BloodGroup:       req.BloodGroup,
		EmergencyContact: req.EmergencyContact,
		HouseholdSize:    req.HouseholdSize,
		Photo:            req.Photo,
		Allergies:        req.Allergies,
		HealthConditions: req.HealthConditions,
		FamilyMembers:    req.FamilyMembers,
		Settings:         req.Settings,
	})
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateProfile, err)
	}
	return presenters.SuccessResponse(c, updated, fiber.StatusOK, domain.MessageSuccessUpdateProfile)
}

// Family member endpoints are read-transform-write over the profile's member
// list: the handler edits a copy and submits it as a wholesale replacement.

func (h *ProfileHandler) AddFamilyMember(c *fiber.Ctx) error {
	var req domain.FamilyMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFamilyMember, err)
	}

	members := append([]entities.FamilyMember{}, h.store.Get().FamilyMembers...)
	members = append(members, toFamilyMember(req, uuid.NewString()))

	updated, err := h.store.Update(c.Context(), profile.Patch{FamilyMembers: members})
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddFamilyMember, err)
	}
	return presenters.SuccessResponse(c, updated.FamilyMembers, fiber.StatusCreated, domain.MessageSuccessAddFamilyMember)
}

func (h *ProfileHandler) UpdateFamilyMember(c *fiber.Ctx) error {
	memberID := c.Params("id")

	var req domain.FamilyMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFamilyMember, err)
	}

	members := append([]entities.FamilyMember{}, h.store.Get().FamilyMembers...)
	found := false
	for i := range members {
		if members[i].ID == memberID {
			members[i] = toFamilyMember(req, memberID)
			found = true
			break
		}
	}
	if !found {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateFamilyMember, domain.ErrFamilyMemberNotFound)
	}

	updated, err := h.store.Update(c.Context(), profile.Patch{FamilyMembers: members})
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateFamilyMember, err)
	}
	return presenters.SuccessResponse(c, updated.FamilyMembers, fiber.StatusOK, domain.MessageSuccessUpdateFamilyMember)
}

func (h *ProfileHandler) DeleteFamilyMember(c *fiber.Ctx) error {
	memberID := c.Params("id")

	current := h.store.Get().FamilyMembers
	members := make([]entities.FamilyMember, 0, len(current))
	found := false
	for _, m := range current {
		if m.ID == memberID {
			found = true
			continue
		}
		members = append(members, m)
	}
	if !found {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteFamilyMember, domain.ErrFamilyMemberNotFound)
	}

	updated, err := h.store.Update(c.Context(), profile.Patch{FamilyMembers: members})
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteFamilyMember, err)
	}
	return presenters.SuccessResponse(c, updated.FamilyMembers, fiber.StatusOK, domain.MessageSuccessDeleteFamilyMember)
}

func toFamilyMember(req domain.FamilyMemberRequest, id string) entities.FamilyMember {
	return entities.FamilyMember{
		ID:               id,
		Name:             req.Name,
		Age:              req.Age,
		BloodGroup:       req.BloodGroup,
		Allergies:        req.Allergies,
		HealthConditions: req.HealthConditions,
		Photo:            req.Photo,
		AlertsEnabled:    req.AlertsEnabled,
	}
}
