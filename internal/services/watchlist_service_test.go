package services

import (
	"context"
	"errors"
	"testing"

	"moviehub-backend/internal/apperr"
	"moviehub-backend/internal/database"
	"moviehub-backend/internal/models"
	"moviehub-backend/internal/repository"
	"moviehub-backend/internal/tmdb"
)

type watchlistFixture struct {
	service   WatchlistService
	movieRepo repository.MovieRepository
	userRepo  repository.UserRepository
	catalog   *stubCatalog
	db        *database.Database
}

func newWatchlistFixture(t *testing.T, mockEnabled bool) *watchlistFixture {
	t.Helper()
	db := newTestDB(t)
	movieRepo := repository.NewMovieRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	userRepo := repository.NewUserRepository(db)
	watchlistRepo := repository.NewWatchlistRepository(db)
	catalog := &stubCatalog{t: t}

	return &watchlistFixture{
		service:   NewWatchlistService(movieRepo, genreRepo, userRepo, watchlistRepo, catalog, "en-US", mockEnabled, testLogger()),
		movieRepo: movieRepo,
		userRepo:  userRepo,
		catalog:   catalog,
		db:        db,
	}
}

func (f *watchlistFixture) createUser(t *testing.T, username string) {
	t.Helper()
	err := f.userRepo.Create(context.Background(), &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestAddResolvesMockFixtureDeterministically(t *testing.T) {
	f := newWatchlistFixture(t, true)
	f.createUser(t, "alice")
	f.createUser(t, "bob")
	ctx := context.Background()

	first, err := f.service.Add(ctx, "alice", 1)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if first.MovieTitle != "Inception" {
		t.Errorf("MovieTitle = %q, want Inception", first.MovieTitle)
	}

	// A second reference to the same mock id resolves to the already
	// materialized row, not a new one.
	second, err := f.service.Add(ctx, "bob", 1)
	if err != nil {
		t.Fatalf("Add for second user returned error: %v", err)
	}
	if second.MovieID != first.MovieID {
		t.Errorf("second add materialized a new movie: %d != %d", second.MovieID, first.MovieID)
	}

	movie, err := f.movieRepo.FindByID(ctx, first.MovieID)
	if err != nil {
		t.Fatal(err)
	}
	if movie.TMDBID == nil || *movie.TMDBID != 1001 {
		t.Errorf("mock external id = %v, want 1001", movie.TMDBID)
	}
	if movie.Runtime != 120 {
		t.Errorf("Runtime = %d, want 120", movie.Runtime)
	}
}

func TestAddUsesMockFallbackForUnnamedReference(t *testing.T) {
	f := newWatchlistFixture(t, true)
	f.createUser(t, "alice")

	item, err := f.service.Add(context.Background(), "alice", 17)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if item.MovieTitle != "Mock Movie 17" {
		t.Errorf("MovieTitle = %q, want Mock Movie 17", item.MovieTitle)
	}
}

func TestAddMaterializesFromRemote(t *testing.T) {
	f := newWatchlistFixture(t, true)
	f.createUser(t, "alice")
	ctx := context.Background()

	f.catalog.detailsFn = func(_ context.Context, id int, language string) (*tmdb.MovieDetails, error) {
		if id != 27205 {
			t.Errorf("Details id = %d, want 27205", id)
		}
		if language != "en-US" {
			t.Errorf("Details language = %q, want en-US", language)
		}
		return &tmdb.MovieDetails{
			ID:          27205,
			Title:       "Inception",
			ReleaseDate: "2010-07-16",
			VoteAverage: 8.4,
			Runtime:     148,
			Genres:      []tmdb.GenreRef{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
		}, nil
	}

	item, err := f.service.Add(ctx, "alice", 27205)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if item.MovieTitle != "Inception" {
		t.Errorf("MovieTitle = %q, want Inception", item.MovieTitle)
	}

	movie, err := f.movieRepo.FindByTMDBID(ctx, 27205)
	if err != nil {
		t.Fatal(err)
	}
	if movie == nil {
		t.Fatal("movie not persisted")
	}
	if movie.Runtime != 148 {
		t.Errorf("Runtime = %d, want 148", movie.Runtime)
	}
	if len(movie.Genres) != 2 {
		t.Errorf("got %d genres, want 2", len(movie.Genres))
	}
}

func TestAddDefaultsImplausibleRuntime(t *testing.T) {
	f := newWatchlistFixture(t, false)
	f.createUser(t, "alice")
	ctx := context.Background()

	f.catalog.detailsFn = func(_ context.Context, id int, _ string) (*tmdb.MovieDetails, error) {
		return &tmdb.MovieDetails{ID: id, Title: "No Runtime", Runtime: 0}, nil
	}

	item, err := f.service.Add(ctx, "alice", 550)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	movie, err := f.movieRepo.FindByID(ctx, item.MovieID)
	if err != nil {
		t.Fatal(err)
	}
	if movie.Runtime != 120 {
		t.Errorf("Runtime = %d, want default 120", movie.Runtime)
	}
}

func TestAddRemoteNotFound(t *testing.T) {
	f := newWatchlistFixture(t, false)
	f.createUser(t, "alice")

	f.catalog.detailsFn = func(_ context.Context, id int, _ string) (*tmdb.MovieDetails, error) {
		return nil, apperr.NotFoundf("tmdb resource /movie/%d", id)
	}

	_, err := f.service.Add(context.Background(), "alice", 999999999)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want apperr.ErrNotFound", err)
	}
}

func TestAddRemoteUnavailablePropagates(t *testing.T) {
	f := newWatchlistFixture(t, false)
	f.createUser(t, "alice")

	f.catalog.detailsFn = func(_ context.Context, _ int, _ string) (*tmdb.MovieDetails, error) {
		return nil, apperr.Unavailablef("tmdb returned status 503")
	}

	_, err := f.service.Add(context.Background(), "alice", 550)
	if !errors.Is(err, apperr.ErrUnavailable) {
		t.Errorf("err = %v, want apperr.ErrUnavailable", err)
	}
}

func TestAddSkipsMockTableWhenDisabled(t *testing.T) {
	f := newWatchlistFixture(t, false)
	f.createUser(t, "alice")

	// With fixtures off, a small reference goes straight to the remote
	// catalog as an external id.
	f.catalog.detailsFn = func(_ context.Context, id int, _ string) (*tmdb.MovieDetails, error) {
		return &tmdb.MovieDetails{ID: id, Title: "Real Movie Five", Runtime: 95}, nil
	}

	item, err := f.service.Add(context.Background(), "alice", 5)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if item.MovieTitle != "Real Movie Five" {
		t.Errorf("MovieTitle = %q, want Real Movie Five", item.MovieTitle)
	}
	if f.catalog.detailsCalls != 1 {
		t.Errorf("Details called %d times, want 1", f.catalog.detailsCalls)
	}
}

func TestAddPrefersLocalRecord(t *testing.T) {
	f := newWatchlistFixture(t, true)
	f.createUser(t, "alice")
	ctx := context.Background()

	local := &models.Movie{Title: "Already Here", Runtime: 100}
	if err := f.movieRepo.Create(ctx, local); err != nil {
		t.Fatal(err)
	}

	// The reference matches a local internal id, so neither the mock table
	// nor the catalog is consulted.
	item, err := f.service.Add(ctx, "alice", int(local.ID))
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if item.MovieTitle != "Already Here" {
		t.Errorf("MovieTitle = %q, want Already Here", item.MovieTitle)
	}
	if f.catalog.detailsCalls != 0 {
		t.Errorf("Details called %d times, want 0", f.catalog.detailsCalls)
	}
}

func TestAddDuplicateIsConflict(t *testing.T) {
	f := newWatchlistFixture(t, true)
	f.createUser(t, "alice")
	ctx := context.Background()

	if _, err := f.service.Add(ctx, "alice", 2); err != nil {
		t.Fatalf("first Add returned error: %v", err)
	}
	_, err := f.service.Add(ctx, "alice", 2)
	if !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("err = %v, want apperr.ErrConflict", err)
	}
}

func TestAddRejectsNonPositiveReference(t *testing.T) {
	f := newWatchlistFixture(t, true)

	_, err := f.service.Add(context.Background(), "alice", 0)
	if !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("err = %v, want apperr.ErrValidation", err)
	}
}

func TestAddUnknownUser(t *testing.T) {
	f := newWatchlistFixture(t, true)

	_, err := f.service.Add(context.Background(), "ghost", 1)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want apperr.ErrNotFound", err)
	}
}

func TestRemove(t *testing.T) {
	f := newWatchlistFixture(t, true)
	f.createUser(t, "alice")
	ctx := context.Background()

	item, err := f.service.Add(ctx, "alice", 3)
	if err != nil {
		t.Fatal(err)
	}

	if err := f.service.Remove(ctx, "alice", item.MovieID); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}

	items, err := f.service.List(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("watchlist has %d items after remove, want 0", len(items))
	}

	// Removing again is not found, not idempotent success.
	err = f.service.Remove(ctx, "alice", item.MovieID)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("second Remove err = %v, want apperr.ErrNotFound", err)
	}
}

func TestRemoveAbsentMovie(t *testing.T) {
	f := newWatchlistFixture(t, true)
	f.createUser(t, "alice")

	err := f.service.Remove(context.Background(), "alice", 12345)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want apperr.ErrNotFound", err)
	}
}

func TestListReturnsEntriesInInsertionOrder(t *testing.T) {
	f := newWatchlistFixture(t, true)
	f.createUser(t, "alice")
	ctx := context.Background()

	for _, ref := range []int{2, 5, 1} {
		if _, err := f.service.Add(ctx, "alice", ref); err != nil {
			t.Fatal(err)
		}
	}

	items, err := f.service.List(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}

	wantTitles := []string{"The Shawshank Redemption", "The Matrix", "Inception"}
	if len(items) != len(wantTitles) {
		t.Fatalf("got %d items, want %d", len(items), len(wantTitles))
	}
	for i, want := range wantTitles {
		if items[i].MovieTitle != want {
			t.Errorf("items[%d].MovieTitle = %q, want %q", i, items[i].MovieTitle, want)
		}
	}
}
