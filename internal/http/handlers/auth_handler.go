package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"webshop/internal/domain"
	applog "webshop/internal/log"
	"webshop/internal/services"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in credentials
	if err := c.BodyParser(&in); err != nil {
		applog.Security(c, "auth.signup.badbody", nil)
		return jsonError(c, fiber.StatusBadRequest, "Username and password are required.")
	}
	tok, u, err := h.Auth.Register(in.Username, in.Password)
	switch {
	case errors.Is(err, domain.ErrValidation):
		applog.Security(c, "auth.signup.invalid", nil)
		return jsonError(c, fiber.StatusBadRequest, "Username and password are required.")
	case errors.Is(err, domain.ErrUsernameTaken):
		applog.Security(c, "auth.signup.conflict", map[string]any{"username": in.Username})
		return jsonError(c, fiber.StatusConflict, "Username already exists.")
	case err != nil:
		applog.Error(c, "auth.signup.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to sign up.")
	}
	applog.Audit(c, "auth.signup", map[string]any{"user_id": u.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": tok, "user": u})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in credentials
	if err := c.BodyParser(&in); err != nil {
		applog.Security(c, "auth.login.badbody", nil)
		return jsonError(c, fiber.StatusUnauthorized, "Invalid username or password.")
	}
	tok, err := h.Auth.Login(in.Username, in.Password)
	if errors.Is(err, domain.ErrBadCreds) {
		applog.Security(c, "auth.login.fail", map[string]any{"username": in.Username})
		return jsonError(c, fiber.StatusUnauthorized, "Invalid username or password.")
	}
	if err != nil {
		applog.Error(c, "auth.login.error", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "Failed to log in.")
	}
	applog.Audit(c, "auth.login.success", map[string]any{"username": in.Username})
	return c.JSON(fiber.Map{"token": tok})
}
