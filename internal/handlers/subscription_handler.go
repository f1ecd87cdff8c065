package handlers

import (
	"context"
	"strconv"

	"moviehub-backend/internal/scheduler"
	"moviehub-backend/internal/services"
	"moviehub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SubscriptionHandler struct {
	service services.SubscriptionService
	digest  *scheduler.Digest
	logger  *logrus.Logger
}

func NewSubscriptionHandler(service services.SubscriptionService, digest *scheduler.Digest, logger *logrus.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		service: service,
		digest:  digest,
		logger:  logger,
	}
}

// Subscribe godoc
// @Summary Subscribe an email address to the weekly digest
// @Tags subscriptions
// @Produce json
// @Param email query string true "Recipient email"
// @Param genreName query string false "Optional genre filter (stored, not yet applied)"
// @Param personTmdbId query int false "Optional TMDB person filter (stored, not yet applied)"
// @Success 201 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Subscribe(c *fiber.Ctx) error {
	email := c.Query("email")

	var genreName *string
	if raw := c.Query("genreName", ""); raw != "" {
		genreName = &raw
	}
	var personTMDBID *int
	if raw := c.Query("personTmdbId", ""); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			personTMDBID = &id
		}
	}

	sub, err := h.service.Subscribe(c.Context(), email, genreName, personTMDBID)
	if err != nil {
		return serviceError(c, h.logger, err, "subscribe")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Subscription created successfully", sub)
}

// Unsubscribe godoc
// @Summary Delete a subscription
// @Tags subscriptions
// @Produce json
// @Param id path int true "Subscription ID"
// @Success 204 "No Content"
// @Failure 404 {object} utils.StandardResponse
// @Router /subscriptions/{id} [delete]
func (h *SubscriptionHandler) Unsubscribe(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid subscription ID")
	}

	if err := h.service.Unsubscribe(c.Context(), uint(id)); err != nil {
		return serviceError(c, h.logger, err, "unsubscribe")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary List subscriptions, optionally filtered by email
// @Tags subscriptions
// @Produce json
// @Param email query string false "Filter by email"
// @Success 200 {object} utils.StandardResponse
// @Router /subscriptions [get]
func (h *SubscriptionHandler) List(c *fiber.Ctx) error {
	var email *string
	if raw := c.Query("email", ""); raw != "" {
		email = &raw
	}

	subs, err := h.service.List(c.Context(), email)
	if err != nil {
		return serviceError(c, h.logger, err, "list subscriptions")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Subscriptions retrieved successfully", subs)
}

// TestSend godoc
// @Summary Trigger a digest run immediately
// @Description Runs the weekly digest out of schedule. Sends to all subscribers.
// @Tags subscriptions
// @Produce json
// @Success 202 {object} utils.StandardResponse
// @Failure 503 {object} utils.StandardResponse
// @Router /subscriptions/test-send [post]
func (h *SubscriptionHandler) TestSend(c *fiber.Ctx) error {
	// The run may outlive the request; detach it from the request context.
	go func() {
		if err := h.digest.RunOnce(context.Background()); err != nil {
			h.logger.WithError(err).Error("On-demand digest run failed")
		}
	}()

	return utils.SuccessResponse(c, fiber.StatusAccepted, "Digest send triggered", nil)
}
