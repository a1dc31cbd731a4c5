// RAWG implementation of [Fetcher]
//
// RAWG API response types based on https://api.rawg.io/docs/
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pixelthorn/gdx/internal/models"
	"github.com/pixelthorn/gdx/internal/shared"
	"golang.org/x/time/rate"
)

const (
	rawgBaseURL = "https://api.rawg.io/api"

	// fallback when a listing entry arrives without a description
	descriptionPlaceholder = "No description available"
)

// RAWGPlatformRef wraps a platform entry in a game listing.
type RAWGPlatformRef struct {
	Platform RAWGPlatform `json:"platform"`
}

// RAWGPlatform represents a platform resource.
type RAWGPlatform struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// RAWGTag represents a tag resource.
type RAWGTag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// RAWGGame represents a single game record in a listing response.
type RAWGGame struct {
	ID              int               `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Released        string            `json:"released"`
	TBA             bool              `json:"tba"`
	BackgroundImage string            `json:"background_image"`
	Rating          float64           `json:"rating"`
	Added           int               `json:"added"`
	Platforms       []RAWGPlatformRef `json:"platforms"`
	Tags            []RAWGTag         `json:"tags"`
}

// RAWGListResponse represents the paginated /games listing envelope.
type RAWGListResponse struct {
	Count    int        `json:"count"`
	Next     *string    `json:"next"`
	Previous *string    `json:"previous"`
	Results  []RAWGGame `json:"results"`
}

// RAWGService implements [Fetcher] against the RAWG games database API.
//
// Requests are query-parameterized by API key, ordering directive, and page
// size, and throttled with a [rate.Limiter] to stay inside the free tier.
type RAWGService struct {
	baseURL    string
	apiKey     string
	ordering   string
	pageSize   int
	httpClient *http.Client
	limiter    *rate.Limiter
}

// RAWGOpts contains configuration options for creating a [RAWGService].
type RAWGOpts struct {
	BaseURL    string  // defaults to the public RAWG endpoint
	APIKey     string  // required for authenticated requests
	Ordering   string  // listing order directive (default "-rating")
	PageSize   int     // listing page size (default 12)
	RPS        float64 // requests per second (default 5)
	HTTPClient *http.Client
}

// NewRAWGService creates a new RAWG catalog fetcher.
func NewRAWGService(opts RAWGOpts) *RAWGService {
	if opts.BaseURL == "" {
		opts.BaseURL = rawgBaseURL
	}
	if opts.Ordering == "" {
		opts.Ordering = "-rating"
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 12
	}
	if opts.RPS <= 0 {
		opts.RPS = 5.0
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &RAWGService{
		baseURL:    opts.BaseURL,
		apiKey:     opts.APIKey,
		ordering:   opts.Ordering,
		pageSize:   opts.PageSize,
		httpClient: opts.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(opts.RPS), 1),
	}
}

// Name returns the provider name.
func (r *RAWGService) Name() string { return "RAWG" }

// FetchPopular performs one GET /games listing request and maps the results.
func (r *RAWGService) FetchPopular(ctx context.Context) ([]models.Game, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	if r.apiKey != "" {
		params.Set("key", r.apiKey)
	}
	params.Set("ordering", r.ordering)
	params.Set("page_size", strconv.Itoa(r.pageSize))

	fullURL := fmt.Sprintf("%s/games?%s", r.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var listing RAWGListResponse
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("failed to parse listing: %w", err)
	}

	games := make([]models.Game, 0, len(listing.Results))
	for _, rec := range listing.Results {
		games = append(games, mapGame(rec))
	}

	return games, nil
}

// mapGame converts a RAWG record into the canonical Game shape.
//
// Unmapped or missing fields fall back to documented defaults: absent
// description becomes a placeholder, absent rating stays zero, the tag list
// is capped at three entries.
func mapGame(rec RAWGGame) models.Game {
	description := rec.Description
	if description == "" {
		description = descriptionPlaceholder
	}

	rating := rec.Rating
	if rating < 0 {
		rating = 0
	}
	if rating > models.RatingMax {
		rating = models.RatingMax
	}

	downloads := rec.Added
	if downloads < 0 {
		downloads = 0
	}

	var platforms []string
	for _, p := range rec.Platforms {
		platforms = append(platforms, p.Platform.Name)
	}

	var tags []string
	for i, tag := range rec.Tags {
		if i == 3 {
			break
		}
		tags = append(tags, tag.Name)
	}

	return models.Game{
		ID:          strconv.Itoa(rec.ID),
		Title:       rec.Name,
		Description: description,
		ReleaseDate: rec.Released,
		Rating:      rating,
		Downloads:   downloads,
		ComingSoon:  rec.TBA,
		ImageURL:    rec.BackgroundImage,
		Platforms:   platforms,
		Tags:        tags,
	}
}
