package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/bored-backend/internal/service"
	"github.com/sefazor/bored-backend/pkg/boredapi"
)

// statusForError maps the service error taxonomy onto HTTP statuses.
// Anything unrecognized is an internal store failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrDuplicateIdentity):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, service.ErrUnauthorized):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrActivityNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, boredapi.ErrUpstreamUnavailable):
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}
