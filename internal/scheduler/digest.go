// Package scheduler runs the weekly release digest: page one of "upcoming"
// is fetched through the read-through cache, formatted as plain text, and
// sent to every subscriber. Subscription genre/person filters are stored but
// not yet applied here; every recipient gets the same digest.
package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"moviehub-backend/internal/mailer"
	"moviehub-backend/internal/models"
	"moviehub-backend/internal/tmdb"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const digestTitleLimit = 10

// upcomingProvider is the slice of the movie service the digest needs.
type upcomingProvider interface {
	GetUpcoming(ctx context.Context, page int) (*tmdb.Page, error)
}

// subscriptionLister is the slice of the subscription store the digest needs.
type subscriptionLister interface {
	FindAll(ctx context.Context) ([]models.Subscription, error)
}

type Digest struct {
	subs    subscriptionLister
	movies  upcomingProvider
	mailer  mailer.Sender
	subject string
	logger  *logrus.Logger
	cron    *cron.Cron
}

func NewDigest(subs subscriptionLister, movies upcomingProvider, sender mailer.Sender, subject string, logger *logrus.Logger) *Digest {
	return &Digest{
		subs:    subs,
		movies:  movies,
		mailer:  sender,
		subject: subject,
		logger:  logger,
	}
}

// Start schedules the digest with the given cron spec (default Monday
// 09:00). The cron runner never overlaps a job with itself.
func (d *Digest) Start(spec string) error {
	d.cron = cron.New()
	_, err := d.cron.AddFunc(spec, func() {
		if err := d.RunOnce(context.Background()); err != nil {
			d.logger.WithError(err).Error("Weekly digest run failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule digest: %w", err)
	}
	d.cron.Start()
	d.logger.WithField("spec", spec).Info("Digest scheduler started")
	return nil
}

func (d *Digest) Stop() {
	if d.cron != nil {
		d.cron.Stop()
	}
}

// RunOnce composes and sends the digest to all current subscribers. A send
// failure for one recipient is logged and the loop continues; the remote
// fetch failing aborts the whole run since there is nothing to send.
func (d *Digest) RunOnce(ctx context.Context) error {
	subs, err := d.subs.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		d.logger.Debug("No subscribers, skipping digest")
		return nil
	}

	page, err := d.movies.GetUpcoming(ctx, 1)
	if err != nil {
		return fmt.Errorf("failed to fetch upcoming movies: %w", err)
	}

	body := composeBody(time.Now(), page.Results)

	var sent, failed int
	for _, sub := range subs {
		if err := d.mailer.Send(sub.Email, d.subject, body); err != nil {
			failed++
			d.logger.WithError(err).WithField("email", sub.Email).Warn("Failed to send digest")
			continue
		}
		sent++
	}

	d.logger.WithFields(logrus.Fields{
		"sent":   sent,
		"failed": failed,
	}).Info("Digest run completed")
	return nil
}

func composeBody(now time.Time, upcoming []tmdb.MovieSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Upcoming this week (as of %s)\n\n", now.Format("2006-01-02"))

	for i, movie := range upcoming {
		if i >= digestTitleLimit {
			break
		}
		fmt.Fprintf(&b, "- %s (⭐ %.1f)\n", movie.Title, movie.VoteAverage)
	}
	return b.String()
}
