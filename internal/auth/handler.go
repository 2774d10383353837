package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ubermelon/shop-backend/internal/session"
)

type Handler struct {
	service *Service
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/login", h.login)
	app.Get("/logout", h.logout)
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	sess, err := session.FromCtx(c)
	if err != nil {
		return err
	}

	if err := h.service.Login(sess, payload.Email, payload.Password); err != nil {
		switch err {
		case ErrNoSuchCustomer:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "No customer with that email found"})
		case ErrBadCredentials:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Incorrect password"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(fiber.Map{
		"message":  "Login successful!",
		"email":    payload.Email,
		"redirect": "/melons",
	})
}

func (h *Handler) logout(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return err
	}

	if err := h.service.Logout(sess); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "You are not logged in"})
	}

	return c.JSON(fiber.Map{
		"message":  "User logged out",
		"redirect": "/melons",
	})
}
