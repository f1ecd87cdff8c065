package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"moviehub-backend/internal/database"
	"moviehub-backend/internal/tmdb"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// A second pooled connection would see a different empty memory database.
	sqlDB.SetMaxOpenConns(1)

	db := database.New(gormDB, 5*time.Second)
	if err := db.Migrate(); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// stubCatalog implements tmdb.Catalog with overridable operations and call
// counters. Unset operations fail the test when reached.
type stubCatalog struct {
	t *testing.T

	popularFn  func(ctx context.Context, language string, page int) (*tmdb.Page, error)
	upcomingFn func(ctx context.Context, language string, page int) (*tmdb.Page, error)
	detailsFn  func(ctx context.Context, id int, language string) (*tmdb.MovieDetails, error)
	creditsFn  func(ctx context.Context, id int) ([]tmdb.CastMember, error)
	reviewsFn  func(ctx context.Context, id, page int) ([]tmdb.Review, error)

	popularCalls int
	detailsCalls int
	reviewsCalls int
}

func (s *stubCatalog) Popular(ctx context.Context, language string, page int) (*tmdb.Page, error) {
	s.popularCalls++
	if s.popularFn == nil {
		s.t.Fatal("unexpected Popular call")
	}
	return s.popularFn(ctx, language, page)
}

func (s *stubCatalog) TopRated(ctx context.Context, language string, page int) (*tmdb.Page, error) {
	if s.popularFn == nil {
		s.t.Fatal("unexpected TopRated call")
	}
	return s.popularFn(ctx, language, page)
}

func (s *stubCatalog) Upcoming(ctx context.Context, language string, page int) (*tmdb.Page, error) {
	if s.upcomingFn == nil {
		s.t.Fatal("unexpected Upcoming call")
	}
	return s.upcomingFn(ctx, language, page)
}

func (s *stubCatalog) Details(ctx context.Context, id int, language string) (*tmdb.MovieDetails, error) {
	s.detailsCalls++
	if s.detailsFn == nil {
		s.t.Fatal("unexpected Details call")
	}
	return s.detailsFn(ctx, id, language)
}

func (s *stubCatalog) Credits(ctx context.Context, id int) ([]tmdb.CastMember, error) {
	if s.creditsFn == nil {
		s.t.Fatal("unexpected Credits call")
	}
	return s.creditsFn(ctx, id)
}

func (s *stubCatalog) Reviews(ctx context.Context, id, page int) ([]tmdb.Review, error) {
	s.reviewsCalls++
	if s.reviewsFn == nil {
		s.t.Fatal("unexpected Reviews call")
	}
	return s.reviewsFn(ctx, id, page)
}

// fakeSender records sent mail and can be told to fail for an address.
type fakeSender struct {
	sent   []sentMail
	failTo map[string]bool
}

type sentMail struct {
	to, subject, body string
}

func (f *fakeSender) Send(to, subject, body string) error {
	if f.failTo[to] {
		return errSendFailed
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

var errSendFailed = errors.New("smtp send failed")
