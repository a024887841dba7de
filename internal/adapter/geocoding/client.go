// Package geocoding resolves coordinates and place names with the Google Geocoding API.
package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/gramaconnect/gramaconnect-backend/internal/config"
	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("geocoding: disabled")

// Cache stores encoded lookup results. *redis.GeoCache implements it.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
}

// Client calls the Geocoding API, throttled to the configured request rate.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      Cache
	log        *slog.Logger
}

// New creates a client. cache may be nil.
func New(cfg config.GeocodingConfig, cache Cache, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
		cache:      cache,
		log:        logger.With("adapter", "geocoding"),
	}
}

// Reverse returns the formatted address nearest to lat/lng.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (domain.Location, error) {
	latlng := strconv.FormatFloat(lat, 'f', 6, 64) + "," + strconv.FormatFloat(lng, 'f', 6, 64)
	loc, err := c.lookup(ctx, "rev:"+latlng, url.Values{"latlng": {latlng}})
	if err != nil {
		return domain.Location{}, err
	}
	// Keep the caller's exact coordinates; the API returns the matched feature's.
	loc.Lat, loc.Lng = lat, lng
	return loc, nil
}

// Search returns the first match for a free-text place query.
func (c *Client) Search(ctx context.Context, query string) (domain.Location, error) {
	q := strings.TrimSpace(query)
	return c.lookup(ctx, "search:"+strings.ToLower(q), url.Values{"address": {q}})
}

func (c *Client) lookup(ctx context.Context, key string, params url.Values) (domain.Location, error) {
	if c.apiKey == "" {
		return domain.Location{}, ErrDisabled
	}

	if loc, ok := c.fromCache(ctx, key); ok {
		return loc, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return domain.Location{}, fmt.Errorf("geocoding: throttle: %w", err)
	}

	params.Set("key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.Location{}, fmt.Errorf("geocoding: create request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "geocoding request failed", slog.String("key", key), slog.String("error", err.Error()))
		return domain.Location{}, fmt.Errorf("geocoding: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Location{}, fmt.Errorf("geocoding: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Location{}, fmt.Errorf("geocoding: read body: %w", err)
	}

	var ar apiResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return domain.Location{}, fmt.Errorf("geocoding: decode json: %w", err)
	}

	switch ar.Status {
	case "OK":
	case "ZERO_RESULTS":
		return domain.Location{}, fmt.Errorf("geocoding: no results: %w", domain.ErrNotFound)
	default:
		return domain.Location{}, fmt.Errorf("geocoding: api status %s: %s", ar.Status, ar.ErrorMessage)
	}
	if len(ar.Results) == 0 {
		return domain.Location{}, fmt.Errorf("geocoding: no results: %w", domain.ErrNotFound)
	}

	first := ar.Results[0]
	loc := domain.Location{
		Lat:     first.Geometry.Location.Lat,
		Lng:     first.Geometry.Location.Lng,
		Address: first.FormattedAddress,
	}
	c.toCache(ctx, key, loc)
	return loc, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	c.log.WarnContext(ctx, "geocoding retry")

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(300 * time.Millisecond):
	}
	return c.httpClient.Do(req)
}

func (c *Client) fromCache(ctx context.Context, key string) (domain.Location, bool) {
	if c.cache == nil {
		return domain.Location{}, false
	}
	b, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.WarnContext(ctx, "geocoding cache read failed", slog.String("error", err.Error()))
		return domain.Location{}, false
	}
	if !ok {
		return domain.Location{}, false
	}
	var v cached
	if err := json.Unmarshal(b, &v); err != nil {
		return domain.Location{}, false
	}
	return domain.Location{Lat: v.Lat, Lng: v.Lng, Address: v.Address}, true
}

func (c *Client) toCache(ctx context.Context, key string, loc domain.Location) {
	if c.cache == nil {
		return
	}
	b, err := json.Marshal(cached{Lat: loc.Lat, Lng: loc.Lng, Address: loc.Address})
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, b); err != nil {
		c.log.WarnContext(ctx, "geocoding cache write failed", slog.String("error", err.Error()))
	}
}
