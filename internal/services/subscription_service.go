package services

import (
	"context"
	"strings"

	"moviehub-backend/internal/apperr"
	"moviehub-backend/internal/mailer"
	"moviehub-backend/internal/models"
	"moviehub-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type SubscriptionService interface {
	Subscribe(ctx context.Context, email string, genreName *string, personTMDBID *int) (*models.Subscription, error)
	Unsubscribe(ctx context.Context, id uint) error
	List(ctx context.Context, email *string) ([]models.Subscription, error)
	SendEmail(to, subject, body string) error
}

type subscriptionService struct {
	repo   repository.SubscriptionRepository
	mailer mailer.Sender
	logger *logrus.Logger
}

func NewSubscriptionService(repo repository.SubscriptionRepository, sender mailer.Sender, logger *logrus.Logger) SubscriptionService {
	return &subscriptionService{
		repo:   repo,
		mailer: sender,
		logger: logger,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, email string, genreName *string, personTMDBID *int) (*models.Subscription, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperr.Validationf("a valid email address is required")
	}

	sub := &models.Subscription{
		Email:        email,
		GenreName:    genreName,
		PersonTMDBID: personTMDBID,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.WithField("email", email).Info("Subscription created")
	return sub, nil
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, id uint) error {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if sub == nil {
		return apperr.NotFoundf("subscription %d", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithField("id", id).Info("Subscription deleted")
	return nil
}

func (s *subscriptionService) List(ctx context.Context, email *string) ([]models.Subscription, error) {
	if email == nil || *email == "" {
		return s.repo.FindAll(ctx)
	}
	return s.repo.FindByEmail(ctx, *email)
}

func (s *subscriptionService) SendEmail(to, subject, body string) error {
	return s.mailer.Send(to, subject, body)
}
