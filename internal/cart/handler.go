package cart

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ubermelon/shop-backend/internal/session"
)

// Handler delegates cart operations to the cart service. Routes are GET to
// match the storefront's link-driven flow.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/cart", h.showCart)
	app.Get("/add_to_cart/:id", h.addToCart)
	app.Get("/empty", h.emptyCart)
	app.Get("/checkout", h.checkout)
}

func (h *Handler) showCart(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return err
	}

	view, err := h.service.ViewCart(sess)
	if err != nil {
		switch err {
		case ErrEmptyCart:
			return c.JSON(fiber.Map{
				"message":  "Cart is currently empty",
				"redirect": "/melons",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "something went wrong"})
		}
	}

	return c.JSON(view)
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return err
	}

	qty, err := h.service.AddItem(sess, c.Params("id"))
	if err != nil {
		switch err {
		case ErrUnknownMelon:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No melon with that id found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(fiber.Map{
		"message":  "Melon successfully added to cart",
		"melonId":  c.Params("id"),
		"quantity": qty,
		"redirect": "/cart",
	})
}

func (h *Handler) emptyCart(c *fiber.Ctx) error {
	sess, err := session.FromCtx(c)
	if err != nil {
		return err
	}

	h.service.EmptyCart(sess)
	return c.JSON(fiber.Map{
		"message":  "Cart emptied",
		"redirect": "/cart",
	})
}

// checkout is deliberately unimplemented; payment processing is out of scope.
func (h *Handler) checkout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{
		"message":  "Sorry! Checkout will be implemented in a future version.",
		"redirect": "/melons",
	})
}
