package domain

import (
	"errors"

	"Expronix-Backend/entities"
)

var (
	MessageSuccessGetProfile         = "profile retrieved successfully"
	MessageSuccessUpdateProfile      = "profile updated successfully"
	MessageSuccessAddFamilyMember    = "family member added successfully"
	MessageSuccessUpdateFamilyMember = "family member updated successfully"
	MessageSuccessDeleteFamilyMember = "family member deleted successfully"

	MessageFailedGetProfile         = "failed to retrieve profile"
	MessageFailedUpdateProfile      = "failed to update profile"
	MessageFailedAddFamilyMember    = "failed to add family member"
	MessageFailedUpdateFamilyMember = "failed to update family member"
	MessageFailedDeleteFamilyMember = "failed to delete family member"

	ErrFamilyMemberNotFound = errors.New("family member not found")
)

type (
	// UpdateProfileRequest is a top-level shallow merge: a provided list or
	// settings block replaces the stored one wholesale. Callers wanting a
	// partial nested change read the current value and merge it themselves.
	UpdateProfileRequest struct {
		Name             *string                 `json:"name"`
		Email            *string                 `json:"email" validate:"omitempty,email"`
		Age              *int                    `json:"age" validate:"omitempty,gte=0"`
		BloodGroup       *string                 `json:"blood_group"`
		EmergencyContact *string                 `json:"emergency_contact"`
		HouseholdSize    *int                    `json:"household_size" validate:"omitempty,gte=1"`
		Photo            *string                 `json:"photo"`
		Allergies        []entities.Allergy      `json:"allergies"`
		HealthConditions []string                `json:"health_conditions"`
		FamilyMembers    []entities.FamilyMember `json:"family_members"`
		Settings         *entities.UserSettings  `json:"settings"`
	}

	FamilyMemberRequest struct {
		Name             string             `json:"name" validate:"required"`
		Age              int                `json:"age" validate:"gte=0"`
		BloodGroup       string             `json:"blood_group"`
		Allergies        []entities.Allergy `json:"allergies"`
		HealthConditions []string           `json:"health_conditions"`
		Photo            string             `json:"photo"`
		AlertsEnabled    bool               `json:"alerts_enabled"`
	}
)
