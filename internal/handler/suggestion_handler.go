package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/bored-backend/internal/models"
	"github.com/sefazor/bored-backend/pkg/boredapi"
)

type SuggestionHandler struct {
	client *boredapi.Client
}

func NewSuggestionHandler(client *boredapi.Client) *SuggestionHandler {
	return &SuggestionHandler{
		client: client,
	}
}

// Random proxies one suggestion from the upstream source, verbatim.
func (h *SuggestionHandler) Random(c *fiber.Ctx) error {
	suggestion, err := h.client.Random(c.Context())
	if err != nil {
		return c.Status(statusForError(err)).JSON(models.ErrorResponse("Suggestion source unavailable, try again"))
	}

	return c.JSON(suggestion)
}
