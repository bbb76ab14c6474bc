// Package catalog is the gateway to the remote TMDB-style movie catalog.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/mcoot/moviecat/internal/model"
)

const defaultLanguage = "fr-FR"

// Recorder receives one observation per catalog round trip
type Recorder interface {
	RecordCatalogRequest(endpoint string, statusCode int, duration time.Duration)
}

// Config holds the catalog connection settings
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// RateLimit is the maximum requests per second; 0 disables pacing
	RateLimit float64
}

// Client issues authenticated reads against the catalog.
// It neither caches nor retries.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	recorder   Recorder
	logger     *slog.Logger
}

// NewClient creates a catalog client. recorder may be nil.
func NewClient(cfg Config, httpClient *http.Client, recorder Recorder, logger *slog.Logger) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		recorder:   recorder,
		logger:     logger.With(slog.String("component", "catalog")),
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return c
}

// Get fetches endpoint and decodes the JSON body into dest.
//
// api_key and language are always sent; params may override them.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values, dest any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("catalog rate limit: %w", err)
		}
	}

	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("language", defaultLanguage)
	for k, v := range params {
		query[k] = v
	}

	reqURL := c.baseURL + endpoint + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(endpoint, 0, start)
		c.logger.Error("catalog request failed",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("catalog request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	c.record(endpoint, resp.StatusCode, start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("catalog returned error status",
			slog.String("endpoint", endpoint),
			slog.Int("http_status", resp.StatusCode))
		return &RemoteCatalogError{
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode catalog response %s: %w", endpoint, err)
	}
	return nil
}

func (c *Client) record(endpoint string, status int, start time.Time) {
	if c.recorder != nil {
		c.recorder.RecordCatalogRequest(endpoint, status, time.Since(start))
	}
}

func (c *Client) page(ctx context.Context, endpoint string, params url.Values, page int) (*model.MoviePage, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("page", strconv.Itoa(page))

	var result model.MoviePage
	if err := c.Get(ctx, endpoint, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Popular lists popular movies
func (c *Client) Popular(ctx context.Context, page int) (*model.MoviePage, error) {
	return c.page(ctx, "/movie/popular", nil, page)
}

// Trending lists this week's trending movies
func (c *Client) Trending(ctx context.Context, page int) (*model.MoviePage, error) {
	return c.page(ctx, "/trending/movie/week", nil, page)
}

// Upcoming lists upcoming releases
func (c *Client) Upcoming(ctx context.Context, page int) (*model.MoviePage, error) {
	return c.page(ctx, "/movie/upcoming", nil, page)
}

// Genres lists every movie genre
func (c *Client) Genres(ctx context.Context) (*model.GenreList, error) {
	var result model.GenreList
	if err := c.Get(ctx, "/genre/movie/list", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ByGenre lists movies of a genre, most popular first
func (c *Client) ByGenre(ctx context.Context, genreID, page int) (*model.MoviePage, error) {
	return c.page(ctx, "/discover/movie", url.Values{
		"with_genres": {strconv.Itoa(genreID)},
		"sort_by":     {"popularity.desc"},
	}, page)
}

// ByTitle searches movies by title
func (c *Client) ByTitle(ctx context.Context, title string, page int) (*model.MoviePage, error) {
	return c.page(ctx, "/search/movie", url.Values{"query": {title}}, page)
}

// ByReleaseDate lists movies released on date (YYYY-MM-DD)
func (c *Client) ByReleaseDate(ctx context.Context, date string, page int) (*model.MoviePage, error) {
	return c.page(ctx, "/discover/movie", url.Values{"primary_release_date": {date}}, page)
}

// ByMinimumRating lists movies by vote average
func (c *Client) ByMinimumRating(ctx context.Context, note float64, page int) (*model.MoviePage, error) {
	return c.page(ctx, "/discover/movie", url.Values{
		"vote_average": {strconv.FormatFloat(note, 'f', -1, 64)},
	}, page)
}
