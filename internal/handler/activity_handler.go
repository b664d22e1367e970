package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/bored-backend/internal/middleware"
	"github.com/sefazor/bored-backend/internal/models"
	"github.com/sefazor/bored-backend/internal/repository"
	"github.com/sefazor/bored-backend/internal/service"
	"github.com/sefazor/bored-backend/pkg/utils"
)

type ActivityHandler struct {
	activityService *service.ActivityService
	validator       *utils.Validator
}

func NewActivityHandler(activityService *service.ActivityService, validator *utils.Validator) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		validator:       validator,
	}
}

func (h *ActivityHandler) ListActivities(c *fiber.Ctx) error {
	ownerID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid user id"))
	}

	limit := c.QueryInt("limit", repository.MaxListLimit)

	activities, err := h.activityService.ListActivities(middleware.CurrentUser(c), uint(ownerID), limit)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(activities, ""))
}

func (h *ActivityHandler) SaveActivity(c *fiber.Ctx) error {
	var req models.SaveActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	activity, err := h.activityService.SaveActivity(middleware.CurrentUser(c), req)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(activity, "Activity saved"))
}

func (h *ActivityHandler) IgnoreActivity(c *fiber.Ctx) error {
	var req models.IgnoreActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	activity, err := h.activityService.IgnoreActivity(middleware.CurrentUser(c), req)
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(activity, "Activity ignored"))
}

func (h *ActivityHandler) ListIgnored(c *fiber.Ctx) error {
	ownerID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid user id"))
	}

	activities, err := h.activityService.ListIgnored(middleware.CurrentUser(c), uint(ownerID))
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(activities, ""))
}

func (h *ActivityHandler) CompleteActivity(c *fiber.Ctx) error {
	activityID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid activity id"))
	}

	activity, err := h.activityService.CompleteActivity(middleware.CurrentUser(c), uint(activityID))
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(activity, "Activity completed"))
}
