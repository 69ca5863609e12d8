package handlers

import (
	"github.com/gofiber/fiber/v2"

	"Expronix-Backend/domain"
	"Expronix-Backend/internal/api/presenters"
	"Expronix-Backend/internal/utils"
	"Expronix-Backend/pkg/user"
)

type UserHandler struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req domain.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	if err := h.userService.Register(c.Context(), req); err != nil {
		status := fiber.StatusInternalServerError
		if err == domain.ErrEmailAlreadyExists {
			status = fiber.StatusConflict
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedRegister, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req domain.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := utils.Validate.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	result, err := h.userService.Login(c.Context(), req)
	if err != nil {
		status := fiber.StatusInternalServerError
		if err == domain.ErrWrongCredentials {
			status = fiber.StatusUnauthorized
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedLogin, err)
	}
	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessLogin)
}
