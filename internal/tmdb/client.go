// Package tmdb implements the remote catalog client. All operations hit a
// single external host, authenticate with a bearer token, and translate
// remote failures into the typed errors from internal/apperr: a 404 is
// apperr.ErrNotFound, everything else (transport fault, non-2xx, bad JSON)
// is apperr.ErrUnavailable. The client performs no retries.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"moviehub-backend/internal/apperr"
)

// MovieSummary is a single entry of a paginated list response.
type MovieSummary struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Popularity  float64 `json:"popularity"`
	GenreIDs    []int   `json:"genre_ids"`
}

// Page models the TMDB paginated list payload.
type Page struct {
	Page         int            `json:"page"`
	Results      []MovieSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// GenreRef is the embedded genre object of a details response.
type GenreRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetails is the full single-movie record.
type MovieDetails struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Overview    string     `json:"overview"`
	ReleaseDate string     `json:"release_date"`
	VoteAverage float64    `json:"vote_average"`
	Runtime     int        `json:"runtime"`
	Genres      []GenreRef `json:"genres"`
}

type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

type creditsResponse struct {
	ID   int          `json:"id"`
	Cast []CastMember `json:"cast"`
}

type Review struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	URL       string `json:"url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type reviewsResponse struct {
	Page         int      `json:"page"`
	Results      []Review `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// Catalog is the set of remote read operations consumed by the services.
type Catalog interface {
	Popular(ctx context.Context, language string, page int) (*Page, error)
	TopRated(ctx context.Context, language string, page int) (*Page, error)
	Upcoming(ctx context.Context, language string, page int) (*Page, error)
	Details(ctx context.Context, id int, language string) (*MovieDetails, error)
	Credits(ctx context.Context, id int) ([]CastMember, error)
	Reviews(ctx context.Context, id, page int) ([]Review, error)
}

type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

var _ Catalog = (*Client)(nil)

// New creates a TMDB client authenticated by the v4 read access token.
func New(token, baseURL string, timeout time.Duration) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("tmdb token required")
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		token:      token,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) Popular(ctx context.Context, language string, page int) (*Page, error) {
	return c.fetchPage(ctx, "/movie/popular", language, page)
}

func (c *Client) TopRated(ctx context.Context, language string, page int) (*Page, error) {
	return c.fetchPage(ctx, "/movie/top_rated", language, page)
}

func (c *Client) Upcoming(ctx context.Context, language string, page int) (*Page, error) {
	return c.fetchPage(ctx, "/movie/upcoming", language, page)
}

func (c *Client) fetchPage(ctx context.Context, path, language string, page int) (*Page, error) {
	params := url.Values{}
	params.Set("language", language)
	params.Set("page", strconv.Itoa(page))

	var payload Page
	if err := c.get(ctx, path, params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) Details(ctx context.Context, id int, language string) (*MovieDetails, error) {
	params := url.Values{}
	params.Set("language", language)

	var payload MovieDetails
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) Credits(ctx context.Context, id int) ([]CastMember, error) {
	var payload creditsResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/credits", id), nil, &payload); err != nil {
		return nil, err
	}
	return payload.Cast, nil
}

func (c *Client) Reviews(ctx context.Context, id, page int) ([]Review, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	var payload reviewsResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/reviews", id), params, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperr.Unavailablef("tmdb request to %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return apperr.NotFoundf("tmdb resource %s", path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperr.Unavailablef("tmdb returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Unavailablef("failed to decode tmdb response for %s: %v", path, err)
	}
	return nil
}
