package handlers

import (
	"strconv"

	"moviehub-backend/internal/models"
	"moviehub-backend/internal/services"
	"moviehub-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetMovies godoc
// @Summary List movies from the local catalog
// @Description List movies with optional conjunctive filters and pagination
// @Tags movies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param title query string false "Case-insensitive title substring"
// @Param genre query string false "Case-insensitive exact genre name"
// @Param year query int false "Release year"
// @Param min_rating query number false "Minimum vote average (inclusive)"
// @Param max_rating query number false "Maximum vote average (inclusive)"
// @Success 200 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /movies [get]
func (h *MovieHandler) GetMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	filter := models.MovieFilter{
		Title: c.Query("title", ""),
		Genre: c.Query("genre", ""),
	}
	if raw := c.Query("year", ""); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			filter.Year = &year
		}
	}
	if raw := c.Query("min_rating", ""); raw != "" {
		if rating, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinRating = &rating
		}
	}
	if raw := c.Query("max_rating", ""); raw != "" {
		if rating, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxRating = &rating
		}
	}

	movies, total, err := h.service.GetMovies(ctx, filter, page, limit)
	if err != nil {
		return serviceError(c, h.logger, err, "list movies")
	}

	meta := utils.CreatePaginationMeta(page, limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies, meta)
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.GetMovieByID(c.Context(), uint(id))
	if err != nil {
		return serviceError(c, h.logger, err, "get movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// CreateMovie godoc
// @Summary Create a movie
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie payload"
// @Success 201 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 409 {object} utils.StandardResponse
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie := &models.Movie{
		TMDBID:      req.TMDBID,
		Title:       req.Title,
		Overview:    req.Overview,
		ReleaseDate: req.ReleaseDate,
		VoteAverage: req.VoteAverage,
		Runtime:     req.Runtime,
	}

	created, err := h.service.AddMovie(c.Context(), movie, req.Genres)
	if err != nil {
		return serviceError(c, h.logger, err, "create movie")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie created successfully", created)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body MovieRequest true "Movie payload"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	update := &models.Movie{
		Title:       req.Title,
		Overview:    req.Overview,
		ReleaseDate: req.ReleaseDate,
		VoteAverage: req.VoteAverage,
		Runtime:     req.Runtime,
	}

	movie, err := h.service.EditMovie(c.Context(), uint(id), update, req.Genres)
	if err != nil {
		return serviceError(c, h.logger, err, "update movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", movie)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.DeleteMovie(c.Context(), uint(id)); err != nil {
		return serviceError(c, h.logger, err, "delete movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully", nil)
}

// GetGenres godoc
// @Summary List all known genres
// @Tags movies
// @Produce json
// @Success 200 {object} utils.StandardResponse
// @Router /genres [get]
func (h *MovieHandler) GetGenres(c *fiber.Ctx) error {
	genres, err := h.service.GetGenres(c.Context())
	if err != nil {
		return serviceError(c, h.logger, err, "list genres")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", genres)
}

// GetPopular godoc
// @Summary Popular movies from the remote catalog
// @Tags catalog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} utils.StandardResponse
// @Failure 503 {object} utils.StandardResponse
// @Router /movies/popular [get]
func (h *MovieHandler) GetPopular(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))

	result, err := h.service.GetPopular(c.Context(), page)
	if err != nil {
		return serviceError(c, h.logger, err, "popular movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Popular movies retrieved successfully", result)
}

// GetTopRated godoc
// @Summary Top rated movies from the remote catalog
// @Tags catalog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} utils.StandardResponse
// @Failure 503 {object} utils.StandardResponse
// @Router /movies/top-rated [get]
func (h *MovieHandler) GetTopRated(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))

	result, err := h.service.GetTopRated(c.Context(), page)
	if err != nil {
		return serviceError(c, h.logger, err, "top rated movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Top rated movies retrieved successfully", result)
}

// GetUpcoming godoc
// @Summary Upcoming movies from the remote catalog
// @Tags catalog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} utils.StandardResponse
// @Failure 503 {object} utils.StandardResponse
// @Router /movies/upcoming [get]
func (h *MovieHandler) GetUpcoming(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))

	result, err := h.service.GetUpcoming(c.Context(), page)
	if err != nil {
		return serviceError(c, h.logger, err, "upcoming movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Upcoming movies retrieved successfully", result)
}

// GetReviews godoc
// @Summary Reviews for a movie from the remote catalog
// @Tags catalog
// @Produce json
// @Param id path int true "TMDB movie ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} utils.StandardResponse
// @Failure 503 {object} utils.StandardResponse
// @Router /movies/{id}/reviews [get]
func (h *MovieHandler) GetReviews(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}
	page, _ := strconv.Atoi(c.Query("page", "1"))

	reviews, err := h.service.GetReviews(c.Context(), id, page)
	if err != nil {
		return serviceError(c, h.logger, err, "movie reviews")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Reviews retrieved successfully", reviews)
}

// GetCast godoc
// @Summary Cast for a movie from the remote catalog
// @Tags catalog
// @Produce json
// @Param id path int true "TMDB movie ID"
// @Success 200 {object} utils.StandardResponse
// @Failure 503 {object} utils.StandardResponse
// @Router /movies/{id}/cast [get]
func (h *MovieHandler) GetCast(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	cast, err := h.service.GetCast(c.Context(), id)
	if err != nil {
		return serviceError(c, h.logger, err, "movie cast")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Cast retrieved successfully", cast)
}
