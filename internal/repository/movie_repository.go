package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"moviehub-backend/internal/database"
	"moviehub-backend/internal/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	FindByTMDBID(ctx context.Context, tmdbID int) (*models.Movie, error)
	ExistsByTMDBID(ctx context.Context, tmdbID int) (bool, error)
	FindAll(ctx context.Context, filter models.MovieFilter, page, limit int) ([]models.Movie, int64, error)
	ReplaceGenres(ctx context.Context, movie *models.Movie, genres []models.Genre) error
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(movie).Error
}

func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Movie{}, id).Error
}

// ReplaceGenres swaps the movie's genre set for the given one, deleting join
// rows for genres no longer present. Save only upserts associations, so an
// edit that drops a genre has to go through here.
func (r *movieRepository) ReplaceGenres(ctx context.Context, movie *models.Movie, genres []models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Model(movie).Association("Genres").Replace(&genres)
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Preload("Genres").First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Movie{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *movieRepository) FindByTMDBID(ctx context.Context, tmdbID int) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Preload("Genres").Where("tmdb_id = ?", tmdbID).First(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) ExistsByTMDBID(ctx context.Context, tmdbID int) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Movie{}).Where("tmdb_id = ?", tmdbID).Count(&count).Error
	return count > 0, err
}

// FindAll returns a page of movies matching every provided filter predicate.
// Predicates are conjunctive; an empty filter returns all movies. Results
// come back in primary-key order, which is the store's natural order.
func (r *movieRepository) FindAll(ctx context.Context, filter models.MovieFilter, page, limit int) ([]models.Movie, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Movie{})

	if filter.Title != "" {
		query = query.Where("LOWER(movies.title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}

	if filter.Genre != "" {
		query = query.
			Joins("JOIN movie_genres ON movie_genres.movie_id = movies.id").
			Joins("JOIN genres ON genres.id = movie_genres.genre_id").
			Where("LOWER(genres.name) = ?", strings.ToLower(filter.Genre))
	}

	if filter.Year != nil {
		query = query.Where("movies.release_date LIKE ?", fmt.Sprintf("%04d-%%", *filter.Year))
	}

	if filter.MinRating != nil {
		query = query.Where("movies.vote_average >= ?", *filter.MinRating)
	}

	if filter.MaxRating != nil {
		query = query.Where("movies.vote_average <= ?", *filter.MaxRating)
	}

	// Count in its own session so the DISTINCT select does not leak into
	// the row query below.
	if err := query.Session(&gorm.Session{}).Distinct("movies.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.
		Preload("Genres").
		Order("movies.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&movies).Error
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}
