package handlers

import (
	"moviehub-backend/internal/services"
	"moviehub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service services.AuthService
	logger  *logrus.Logger
}

func NewAuthHandler(service services.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param user body services.RegisterRequest true "Registration payload"
// @Success 201 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 409 {object} utils.StandardResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req services.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	token, err := h.service.Register(c.Context(), req)
	if err != nil {
		return serviceError(c, h.logger, err, "register")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "User registered successfully", TokenResponse{
		Token:    token,
		Username: req.Username,
	})
}

// Login godoc
// @Summary Authenticate and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} utils.StandardResponse
// @Failure 401 {object} utils.StandardResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	token, err := h.service.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return serviceError(c, h.logger, err, "login")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Login successful", TokenResponse{
		Token:    token,
		Username: req.Username,
	})
}
