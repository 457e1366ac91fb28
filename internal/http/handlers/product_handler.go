package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"webshop/internal/domain"
	applog "webshop/internal/log"
	"webshop/internal/services"
	"webshop/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// productInput mirrors the wire shape; fields pass through to storage untouched.
type productInput struct {
	Name        string         `json:"name"`
	RawImageArr domain.RawJSON `json:"rawImageArr"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
}

func (in productInput) toDomain() domain.Product {
	return domain.Product{
		Name:        in.Name,
		RawImageArr: in.RawImageArr,
		Description: in.Description,
		Price:       in.Price,
	}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.Catalog.ListProducts()
	if err != nil {
		applog.Error(c, "products.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to fetch products.")
	}
	if out == nil {
		out = []domain.Product{}
	}
	return c.JSON(out)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "Product not found.")
	}
	p, err := h.Catalog.GetProduct(id)
	if errors.Is(err, domain.ErrNotFound) {
		return jsonError(c, fiber.StatusNotFound, "Product not found.")
	}
	if err != nil {
		applog.Error(c, "products.get.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to fetch product.")
	}
	return c.JSON(p)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in productInput
	if err := c.BodyParser(&in); err != nil {
		applog.Security(c, "products.create.badbody", nil)
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	p, err := h.Catalog.CreateProduct(in.toDomain())
	if err != nil {
		applog.Error(c, "products.create.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to add product.")
	}
	applog.Audit(c, "products.create", map[string]any{"product_id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "Product not found.")
	}
	var in productInput
	if err := c.BodyParser(&in); err != nil {
		applog.Security(c, "products.update.badbody", nil)
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	p, err := h.Catalog.UpdateProduct(id, in.toDomain())
	if errors.Is(err, domain.ErrNotFound) {
		return jsonError(c, fiber.StatusNotFound, "Product not found.")
	}
	if err != nil {
		applog.Error(c, "products.update.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to update product.")
	}
	applog.Audit(c, "products.update", map[string]any{"product_id": p.ID})
	return c.JSON(p)
}

// Delete is idempotent: removing an id that does not exist still returns 204.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		applog.Error(c, "products.delete.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to delete product.")
	}
	applog.Audit(c, "products.delete", map[string]any{"product_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
