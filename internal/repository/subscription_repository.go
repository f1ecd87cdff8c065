package repository

import (
	"context"
	"errors"
	"time"

	"moviehub-backend/internal/database"
	"moviehub-backend/internal/models"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *models.Subscription) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Subscription, error)
	FindAll(ctx context.Context) ([]models.Subscription, error)
	FindByEmail(ctx context.Context, email string) ([]models.Subscription, error)
}

type subscriptionRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewSubscriptionRepository(db *database.Database) SubscriptionRepository {
	return &subscriptionRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *subscriptionRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Subscription{}, id).Error
}

func (r *subscriptionRepository) FindByID(ctx context.Context, id uint) (*models.Subscription, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var sub models.Subscription
	err := r.db.WithContext(ctx).First(&sub, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) FindAll(ctx context.Context) ([]models.Subscription, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var subs []models.Subscription
	err := r.db.WithContext(ctx).Order("id ASC").Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepository) FindByEmail(ctx context.Context, email string) ([]models.Subscription, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var subs []models.Subscription
	err := r.db.WithContext(ctx).Where("email = ?", email).Order("id ASC").Find(&subs).Error
	return subs, err
}
