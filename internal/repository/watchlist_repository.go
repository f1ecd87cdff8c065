package repository

import (
	"context"
	"errors"
	"time"

	"moviehub-backend/internal/database"
	"moviehub-backend/internal/models"

	"gorm.io/gorm"
)

type WatchlistRepository interface {
	Create(ctx context.Context, entry *models.WatchlistEntry) error
	Delete(ctx context.Context, entry *models.WatchlistEntry) error
	ExistsByUserAndMovie(ctx context.Context, userID, movieID uint) (bool, error)
	FindByUserAndMovie(ctx context.Context, userID, movieID uint) (*models.WatchlistEntry, error)
	FindAllByUser(ctx context.Context, userID uint) ([]models.WatchlistEntry, error)
}

type watchlistRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewWatchlistRepository(db *database.Database) WatchlistRepository {
	return &watchlistRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *watchlistRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *watchlistRepository) Create(ctx context.Context, entry *models.WatchlistEntry) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *watchlistRepository) Delete(ctx context.Context, entry *models.WatchlistEntry) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(entry).Error
}

func (r *watchlistRepository) ExistsByUserAndMovie(ctx context.Context, userID, movieID uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.WatchlistEntry{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error
	return count > 0, err
}

func (r *watchlistRepository) FindByUserAndMovie(ctx context.Context, userID, movieID uint) (*models.WatchlistEntry, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var entry models.WatchlistEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *watchlistRepository) FindAllByUser(ctx context.Context, userID uint) ([]models.WatchlistEntry, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var entries []models.WatchlistEntry
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}
