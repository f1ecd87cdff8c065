package handlers

import (
	"strconv"

	"moviehub-backend/internal/middleware"
	"moviehub-backend/internal/services"
	"moviehub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type WatchlistHandler struct {
	service services.WatchlistService
	logger  *logrus.Logger
}

func NewWatchlistHandler(service services.WatchlistService, logger *logrus.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		service: service,
		logger:  logger,
	}
}

// Add godoc
// @Summary Add a movie to the current user's watchlist
// @Description The reference is resolved against local storage first and materialized from the remote catalog when absent
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Param movieId path int true "Movie reference (internal or TMDB id)"
// @Success 201 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Failure 409 {object} utils.StandardResponse
// @Router /watchlist/{movieId} [post]
func (h *WatchlistHandler) Add(c *fiber.Ctx) error {
	movieRef, err := strconv.Atoi(c.Params("movieId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie reference")
	}

	item, err := h.service.Add(c.Context(), middleware.Username(c), movieRef)
	if err != nil {
		return serviceError(c, h.logger, err, "add to watchlist")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie added to watchlist", item)
}

// Remove godoc
// @Summary Remove a movie from the current user's watchlist
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Param movieId path int true "Internal movie ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /watchlist/{movieId} [delete]
func (h *WatchlistHandler) Remove(c *fiber.Ctx) error {
	movieID, err := strconv.ParseUint(c.Params("movieId"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.Remove(c.Context(), middleware.Username(c), uint(movieID)); err != nil {
		return serviceError(c, h.logger, err, "remove from watchlist")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie removed from watchlist", nil)
}

// List godoc
// @Summary List the current user's watchlist
// @Tags watchlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /watchlist [get]
func (h *WatchlistHandler) List(c *fiber.Ctx) error {
	items, err := h.service.List(c.Context(), middleware.Username(c))
	if err != nil {
		return serviceError(c, h.logger, err, "list watchlist")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Watchlist retrieved successfully", items)
}
