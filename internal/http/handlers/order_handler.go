package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"webshop/internal/domain"
	applog "webshop/internal/log"
	"webshop/internal/services"
	"webshop/internal/validate"
)

type OrderHandler struct {
	Catalog *services.CatalogService
}

type orderInput struct {
	// Pointer so an absent quantity is distinguishable from zero; both are rejected.
	Quantity *int `json:"quantity"`
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.Catalog.ListOrders()
	if err != nil {
		applog.Error(c, "orders.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to fetch orders.")
	}
	if out == nil {
		out = []domain.Order{}
	}
	return c.JSON(out)
}

func (h *OrderHandler) Place(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "Product not found.")
	}
	var in orderInput
	if err := c.BodyParser(&in); err != nil || in.Quantity == nil {
		applog.Security(c, "orders.place.badbody", nil)
		return jsonError(c, fiber.StatusBadRequest, "A positive quantity is required.")
	}
	o, err := h.Catalog.PlaceOrder(id, *in.Quantity)
	switch {
	case errors.Is(err, domain.ErrValidation):
		return jsonError(c, fiber.StatusBadRequest, "A positive quantity is required.")
	case errors.Is(err, domain.ErrNotFound):
		return jsonError(c, fiber.StatusNotFound, "Product not found.")
	case err != nil:
		applog.Error(c, "orders.place.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to place order.")
	}
	applog.Audit(c, "orders.place", map[string]any{"order_id": o.ID, "total_price": o.TotalPrice})
	return c.Status(fiber.StatusCreated).JSON(o)
}
