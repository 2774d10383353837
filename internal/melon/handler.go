package melon

import (
	"github.com/gofiber/fiber/v2"
)

// Handler serves catalog browsing routes.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/melons", h.listMelons)
	app.Get("/melon/:id", h.getMelon)
}

func (h *Handler) listMelons(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

func (h *Handler) getMelon(c *fiber.Ctx) error {
	m, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No melon with that id found"})
	}

	return c.JSON(m)
}
