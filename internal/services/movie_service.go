package services

import (
	"context"
	"fmt"
	"strconv"

	"moviehub-backend/internal/apperr"
	"moviehub-backend/internal/cache"
	"moviehub-backend/internal/models"
	"moviehub-backend/internal/repository"
	"moviehub-backend/internal/tmdb"

	"github.com/sirupsen/logrus"
)

// Cache names for the remote read-through operations. A list fetch is keyed
// by page, reviews by "id-page", cast and single-movie lookups by id alone.
const (
	cachePopular  = "popularMovies"
	cacheTopRated = "topRatedMovies"
	cacheUpcoming = "upcomingMovies"
	cacheReviews  = "movieReviews"
	cacheCast     = "movieCast"
	cacheMovies   = "movies"
)

type MovieService interface {
	// Local catalog
	GetMovies(ctx context.Context, filter models.MovieFilter, page, limit int) ([]models.Movie, int64, error)
	GetMovieByID(ctx context.Context, id uint) (*models.Movie, error)
	AddMovie(ctx context.Context, movie *models.Movie, genreNames []string) (*models.Movie, error)
	EditMovie(ctx context.Context, id uint, update *models.Movie, genreNames []string) (*models.Movie, error)
	DeleteMovie(ctx context.Context, id uint) error
	GetGenres(ctx context.Context) ([]models.Genre, error)

	// Remote catalog, served through the read-through cache
	GetPopular(ctx context.Context, page int) (*tmdb.Page, error)
	GetTopRated(ctx context.Context, page int) (*tmdb.Page, error)
	GetUpcoming(ctx context.Context, page int) (*tmdb.Page, error)
	GetReviews(ctx context.Context, id, page int) ([]tmdb.Review, error)
	GetCast(ctx context.Context, id int) ([]tmdb.CastMember, error)
}

type movieService struct {
	repo      repository.MovieRepository
	genreRepo repository.GenreRepository
	catalog   tmdb.Catalog
	cache     *cache.Cache
	language  string
	logger    *logrus.Logger
}

func NewMovieService(repo repository.MovieRepository, genreRepo repository.GenreRepository, catalog tmdb.Catalog, c *cache.Cache, language string, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:      repo,
		genreRepo: genreRepo,
		catalog:   catalog,
		cache:     c,
		language:  language,
		logger:    logger,
	}
}

func (s *movieService) GetMovies(ctx context.Context, filter models.MovieFilter, page, limit int) ([]models.Movie, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	return s.repo.FindAll(ctx, filter, page, limit)
}

func (s *movieService) GetMovieByID(ctx context.Context, id uint) (*models.Movie, error) {
	value, err := s.cache.GetOrCompute(cacheMovies, strconv.FormatUint(uint64(id), 10), func() (interface{}, error) {
		movie, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if movie == nil {
			return nil, apperr.NotFoundf("movie with id %d", id)
		}
		return movie, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*models.Movie), nil
}

func (s *movieService) AddMovie(ctx context.Context, movie *models.Movie, genreNames []string) (*models.Movie, error) {
	if movie.Title == "" {
		return nil, apperr.Validationf("movie title is required")
	}
	if movie.Runtime < 30 {
		movie.Runtime = defaultRuntime
	}

	if movie.TMDBID != nil {
		exists, err := s.repo.ExistsByTMDBID(ctx, *movie.TMDBID)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing movie: %w", err)
		}
		if exists {
			return nil, apperr.Conflictf("movie with tmdb id %d already exists", *movie.TMDBID)
		}
	}

	genres, err := s.resolveGenres(ctx, genreNames)
	if err != nil {
		return nil, err
	}
	movie.Genres = genres

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *movieService) EditMovie(ctx context.Context, id uint, update *models.Movie, genreNames []string) (*models.Movie, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFoundf("movie with id %d", id)
	}

	existing.Title = update.Title
	existing.Overview = update.Overview
	existing.ReleaseDate = update.ReleaseDate
	existing.VoteAverage = update.VoteAverage
	existing.Runtime = update.Runtime
	if existing.Runtime < 30 {
		existing.Runtime = defaultRuntime
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if genreNames != nil {
		genres, err := s.resolveGenres(ctx, genreNames)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceGenres(ctx, existing, genres); err != nil {
			return nil, err
		}
		existing.Genres = genres
	}

	s.cache.Invalidate(cacheMovies, strconv.FormatUint(uint64(id), 10))
	return existing, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFoundf("movie with id %d", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(cacheMovies, strconv.FormatUint(uint64(id), 10))
	return nil
}

func (s *movieService) GetGenres(ctx context.Context) ([]models.Genre, error) {
	return s.genreRepo.FindAll(ctx)
}

func (s *movieService) resolveGenres(ctx context.Context, names []string) ([]models.Genre, error) {
	var genres []models.Genre
	for _, name := range names {
		if name == "" {
			continue
		}
		genre, err := s.genreRepo.FindOrCreate(ctx, name)
		if err != nil {
			s.logger.WithError(err).WithField("genre", name).Error("Failed to resolve genre")
			return nil, err
		}
		genres = append(genres, *genre)
	}
	return genres, nil
}

func (s *movieService) GetPopular(ctx context.Context, page int) (*tmdb.Page, error) {
	return s.cachedPage(ctx, cachePopular, page, s.catalog.Popular)
}

func (s *movieService) GetTopRated(ctx context.Context, page int) (*tmdb.Page, error) {
	return s.cachedPage(ctx, cacheTopRated, page, s.catalog.TopRated)
}

func (s *movieService) GetUpcoming(ctx context.Context, page int) (*tmdb.Page, error) {
	return s.cachedPage(ctx, cacheUpcoming, page, s.catalog.Upcoming)
}

func (s *movieService) cachedPage(ctx context.Context, name string, page int, fetch func(context.Context, string, int) (*tmdb.Page, error)) (*tmdb.Page, error) {
	if page < 1 {
		page = 1
	}
	value, err := s.cache.GetOrCompute(name, strconv.Itoa(page), func() (interface{}, error) {
		return fetch(ctx, s.language, page)
	})
	if err != nil {
		return nil, err
	}
	return value.(*tmdb.Page), nil
}

func (s *movieService) GetReviews(ctx context.Context, id, page int) ([]tmdb.Review, error) {
	if page < 1 {
		page = 1
	}
	value, err := s.cache.GetOrCompute(cacheReviews, fmt.Sprintf("%d-%d", id, page), func() (interface{}, error) {
		return s.catalog.Reviews(ctx, id, page)
	})
	if err != nil {
		return nil, err
	}
	return value.([]tmdb.Review), nil
}

func (s *movieService) GetCast(ctx context.Context, id int) ([]tmdb.CastMember, error) {
	value, err := s.cache.GetOrCompute(cacheCast, strconv.Itoa(id), func() (interface{}, error) {
		return s.catalog.Credits(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return value.([]tmdb.CastMember), nil
}
