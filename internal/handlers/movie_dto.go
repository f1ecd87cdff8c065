package handlers

// MovieRequest is the admin create/update payload.
type MovieRequest struct {
	TMDBID      *int     `json:"tmdb_id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	ReleaseDate string   `json:"release_date"`
	VoteAverage float64  `json:"vote_average"`
	Runtime     int      `json:"runtime"`
	Genres      []string `json:"genres"`
}

// LoginRequest carries the credentials for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned by both register and login.
type TokenResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
