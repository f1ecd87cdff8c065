package services

import (
	"context"
	"errors"

	"moviehub-backend/internal/apperr"
	"moviehub-backend/internal/models"
	"moviehub-backend/internal/repository"
	"moviehub-backend/internal/tmdb"

	"github.com/sirupsen/logrus"
)

// WatchlistService reconciles a movie reference against local storage,
// materializing the record on first reference. The acting user is always an
// explicit parameter, never ambient state.
type WatchlistService interface {
	Add(ctx context.Context, username string, movieRef int) (*models.WatchlistItem, error)
	Remove(ctx context.Context, username string, movieID uint) error
	List(ctx context.Context, username string) ([]models.WatchlistItem, error)
}

type watchlistService struct {
	movieRepo     repository.MovieRepository
	genreRepo     repository.GenreRepository
	userRepo      repository.UserRepository
	watchlistRepo repository.WatchlistRepository
	catalog       tmdb.Catalog
	language      string
	mockEnabled   bool
	logger        *logrus.Logger
}

func NewWatchlistService(
	movieRepo repository.MovieRepository,
	genreRepo repository.GenreRepository,
	userRepo repository.UserRepository,
	watchlistRepo repository.WatchlistRepository,
	catalog tmdb.Catalog,
	language string,
	mockEnabled bool,
	logger *logrus.Logger,
) WatchlistService {
	return &watchlistService{
		movieRepo:     movieRepo,
		genreRepo:     genreRepo,
		userRepo:      userRepo,
		watchlistRepo: watchlistRepo,
		catalog:       catalog,
		language:      language,
		mockEnabled:   mockEnabled,
		logger:        logger,
	}
}

func (s *watchlistService) Add(ctx context.Context, username string, movieRef int) (*models.WatchlistItem, error) {
	if movieRef <= 0 {
		return nil, apperr.Validationf("movie reference must be positive")
	}

	s.logger.WithFields(logrus.Fields{
		"movie_ref": movieRef,
		"username":  username,
	}).Info("Adding movie to watchlist")

	movie, err := s.resolveMovie(ctx, movieRef)
	if err != nil {
		return nil, err
	}

	user, err := s.requireUser(ctx, username)
	if err != nil {
		return nil, err
	}

	exists, err := s.watchlistRepo.ExistsByUserAndMovie(ctx, user.ID, movie.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.WithFields(logrus.Fields{
			"movie_id": movie.ID,
			"username": username,
		}).Warn("Movie already on watchlist")
		return nil, apperr.Conflictf("movie %d already on watchlist", movie.ID)
	}

	entry := &models.WatchlistEntry{
		UserID:  user.ID,
		MovieID: movie.ID,
	}
	if err := s.watchlistRepo.Create(ctx, entry); err != nil {
		// The composite unique index catches a racing duplicate add.
		if dup, checkErr := s.watchlistRepo.ExistsByUserAndMovie(ctx, user.ID, movie.ID); checkErr == nil && dup {
			return nil, apperr.Conflictf("movie %d already on watchlist", movie.ID)
		}
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"movie_id": movie.ID,
		"username": username,
	}).Info("Movie added to watchlist")

	return &models.WatchlistItem{
		ID:         entry.ID,
		MovieID:    movie.ID,
		MovieTitle: movie.Title,
	}, nil
}

// resolveMovie turns a reference into a persisted movie: local internal id
// first, then the mock fixture table (dev only), then the remote catalog
// treating the reference as an external id.
func (s *watchlistService) resolveMovie(ctx context.Context, movieRef int) (*models.Movie, error) {
	movie, err := s.movieRepo.FindByID(ctx, uint(movieRef))
	if err != nil {
		return nil, err
	}
	if movie != nil {
		return movie, nil
	}

	if s.mockEnabled && movieRef >= mockRefMin && movieRef <= mockRefMax {
		movie = mockMovie(movieRef)
		if err := s.movieRepo.Create(ctx, movie); err != nil {
			return nil, err
		}
		s.logger.WithField("movie_ref", movieRef).Info("Materialized mock movie")
		return movie, nil
	}

	return s.materializeFromRemote(ctx, movieRef)
}

func (s *watchlistService) materializeFromRemote(ctx context.Context, tmdbID int) (*models.Movie, error) {
	movie, err := s.movieRepo.FindByTMDBID(ctx, tmdbID)
	if err != nil {
		return nil, err
	}
	if movie != nil {
		return movie, nil
	}

	details, err := s.catalog.Details(ctx, tmdbID, s.language)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			s.logger.WithField("tmdb_id", tmdbID).Warn("Remote catalog has no such movie")
			return nil, apperr.NotFoundf("movie %d", tmdbID)
		}
		return nil, err
	}

	runtime := details.Runtime
	if runtime < 30 {
		runtime = defaultRuntime
	}

	var genres []models.Genre
	for _, ref := range details.Genres {
		genre, err := s.genreRepo.FindOrCreate(ctx, ref.Name)
		if err != nil {
			return nil, err
		}
		genres = append(genres, *genre)
	}

	movie = &models.Movie{
		TMDBID:      &tmdbID,
		Title:       details.Title,
		Overview:    details.Overview,
		ReleaseDate: details.ReleaseDate,
		VoteAverage: details.VoteAverage,
		Runtime:     runtime,
		Genres:      genres,
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		// Unique index on tmdb_id is the backstop against two concurrent
		// first references materializing the same movie.
		if existing, findErr := s.movieRepo.FindByTMDBID(ctx, tmdbID); findErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}

	s.logger.WithField("tmdb_id", tmdbID).Info("Materialized movie from remote catalog")
	return movie, nil
}

func (s *watchlistService) Remove(ctx context.Context, username string, movieID uint) error {
	movie, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return err
	}
	if movie == nil {
		return apperr.NotFoundf("movie with id %d", movieID)
	}

	user, err := s.requireUser(ctx, username)
	if err != nil {
		return err
	}

	entry, err := s.watchlistRepo.FindByUserAndMovie(ctx, user.ID, movie.ID)
	if err != nil {
		return err
	}
	if entry == nil {
		return apperr.NotFoundf("watchlist entry for movie %d", movieID)
	}

	if err := s.watchlistRepo.Delete(ctx, entry); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"movie_id": movieID,
		"username": username,
	}).Info("Movie removed from watchlist")
	return nil
}

func (s *watchlistService) List(ctx context.Context, username string) ([]models.WatchlistItem, error) {
	user, err := s.requireUser(ctx, username)
	if err != nil {
		return nil, err
	}

	entries, err := s.watchlistRepo.FindAllByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	items := make([]models.WatchlistItem, 0, len(entries))
	for _, entry := range entries {
		item := models.WatchlistItem{
			ID:      entry.ID,
			MovieID: entry.MovieID,
		}
		if entry.Movie != nil {
			item.MovieTitle = entry.Movie.Title
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *watchlistService) requireUser(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.logger.WithField("username", username).Warn("User not found")
		return nil, apperr.NotFoundf("user %q", username)
	}
	return user, nil
}
