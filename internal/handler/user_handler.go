package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/bored-backend/internal/middleware"
	"github.com/sefazor/bored-backend/internal/models"
	"github.com/sefazor/bored-backend/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid user id"))
	}

	user, err := h.userService.GetProfile(middleware.CurrentUser(c), uint(targetID))
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(user, ""))
}

func (h *UserHandler) DeleteAccount(c *fiber.Ctx) error {
	if err := h.userService.DeleteAccount(middleware.CurrentUser(c)); err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	clearSessionCookie(c)

	return c.JSON(models.SuccessResponse(nil, "Account deleted"))
}
