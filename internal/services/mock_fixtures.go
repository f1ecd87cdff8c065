package services

import (
	"fmt"

	"moviehub-backend/internal/models"
)

// Development-only fixture table for the watchlist reconciler. References in
// [mockRefMin, mockRefMax] that do not resolve locally are materialized from
// this table instead of the remote catalog. Gated by MOCK_FIXTURES_ENABLED.
const (
	mockRefMin = 1
	mockRefMax = 20

	// mockTMDBOffset shifts fixture external ids out of the real TMDB id
	// space so a later real materialization can never collide.
	mockTMDBOffset = 1000

	defaultRuntime = 120
)

type mockFixture struct {
	title       string
	overview    string
	releaseDate string
	voteAverage float64
}

var mockFixtures = map[int]mockFixture{
	1: {
		title:       "Inception",
		overview:    "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
		releaseDate: "2010-07-16",
		voteAverage: 8.4,
	},
	2: {
		title:       "The Shawshank Redemption",
		overview:    "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
		releaseDate: "1994-09-23",
		voteAverage: 8.7,
	},
	3: {
		title:       "The Dark Knight",
		overview:    "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
		releaseDate: "2008-07-18",
		voteAverage: 8.5,
	},
	4: {
		title:       "Pulp Fiction",
		overview:    "The lives of two mob hitmen, a boxer, a gangster and his wife, and a pair of diner bandits intertwine in four tales of violence and redemption.",
		releaseDate: "1994-10-14",
		voteAverage: 8.5,
	},
	5: {
		title:       "The Matrix",
		overview:    "A computer hacker learns from mysterious rebels about the true nature of his reality and his role in the war against its controllers.",
		releaseDate: "1999-03-31",
		voteAverage: 8.1,
	},
	6: {
		title:       "Interstellar",
		overview:    "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
		releaseDate: "2014-11-07",
		voteAverage: 8.3,
	},
}

// mockMovie synthesizes a deterministic movie for a reference in the mock
// range. Repeated calls for the same reference yield identical fields.
func mockMovie(ref int) *models.Movie {
	tmdbID := ref + mockTMDBOffset

	fixture, ok := mockFixtures[ref]
	if !ok {
		fixture = mockFixture{
			title:       fmt.Sprintf("Mock Movie %d", ref),
			overview:    "A mock movie for development purposes.",
			releaseDate: "2024-01-01",
			voteAverage: 7.0,
		}
	}

	return &models.Movie{
		TMDBID:      &tmdbID,
		Title:       fixture.title,
		Overview:    fixture.overview,
		ReleaseDate: fixture.releaseDate,
		VoteAverage: fixture.voteAverage,
		Runtime:     defaultRuntime,
	}
}
