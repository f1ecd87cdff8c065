package routes

import (
	"moviehub-backend/internal/handlers"
	"moviehub-backend/internal/middleware"
	"moviehub-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	movieHandler *handlers.MovieHandler,
	watchlistHandler *handlers.WatchlistHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	authHandler *handlers.AuthHandler,
	uploadHandler *handlers.UploadHandler,
	authService services.AuthService,
) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Movie routes - local CRUD plus remote catalog browsing
	movies := v1.Group("/movies")
	{
		movies.Get("/", movieHandler.GetMovies)
		movies.Post("/", movieHandler.CreateMovie)
		movies.Get("/popular", movieHandler.GetPopular)
		movies.Get("/top-rated", movieHandler.GetTopRated)
		movies.Get("/upcoming", movieHandler.GetUpcoming)
		movies.Get("/:id", movieHandler.GetMovieByID)
		movies.Put("/:id", movieHandler.UpdateMovie)
		movies.Delete("/:id", movieHandler.DeleteMovie)
		movies.Get("/:id/reviews", movieHandler.GetReviews)
		movies.Get("/:id/cast", movieHandler.GetCast)
	}

	v1.Get("/genres", movieHandler.GetGenres)

	// Watchlist routes - require a bearer token
	watchlist := v1.Group("/watchlist", middleware.RequireAuth(authService))
	{
		watchlist.Get("/", watchlistHandler.List)
		watchlist.Post("/:movieId", watchlistHandler.Add)
		watchlist.Delete("/:movieId", watchlistHandler.Remove)
	}

	// Subscription routes - weekly digest management
	subscriptions := v1.Group("/subscriptions")
	{
		subscriptions.Get("/", subscriptionHandler.List)
		subscriptions.Post("/", subscriptionHandler.Subscribe)
		subscriptions.Post("/test-send", subscriptionHandler.TestSend)
		subscriptions.Delete("/:id", subscriptionHandler.Unsubscribe)
	}

	auth := v1.Group("/auth")
	{
		auth.Post("/register", authHandler.Register)
		auth.Post("/login", authHandler.Login)
	}

	upload := v1.Group("/upload")
	{
		upload.Get("/presign", uploadHandler.GetPresignedURL)
	}
}
