package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

var (
	ErrAPIKeyMissing = errors.New("TMDB API key is not configured")
	ErrNotFound      = errors.New("not found on TMDB")
	ErrAPIError      = errors.New("TMDB API error")
)

// Client is a TMDB API client scoped to a single language.
type Client struct {
	apiKey     string
	language   string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(apiKey, language, baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		apiKey:   apiKey,
		language: language,
		baseURL:  baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger.With().Str("component", "tmdb").Logger(),
	}
}

// MovieDetails fetches a movie with its credits embedded.
func (c *Client) MovieDetails(ctx context.Context, movieID int) (*MovieDetails, error) {
	var details MovieDetails
	endpoint := fmt.Sprintf("%s/movie/%d", c.baseURL, movieID)
	if err := c.doRequest(ctx, endpoint, c.params(true), &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// SeriesDetails fetches a TV series with its credits embedded.
func (c *Client) SeriesDetails(ctx context.Context, seriesID int) (*SeriesDetails, error) {
	var details SeriesDetails
	endpoint := fmt.Sprintf("%s/tv/%d", c.baseURL, seriesID)
	if err := c.doRequest(ctx, endpoint, c.params(true), &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// SeasonDetails fetches a single season of a series.
func (c *Client) SeasonDetails(ctx context.Context, seriesID, seasonNumber int) (*SeasonDetails, error) {
	var details SeasonDetails
	endpoint := fmt.Sprintf("%s/tv/%d/season/%d", c.baseURL, seriesID, seasonNumber)
	if err := c.doRequest(ctx, endpoint, c.params(false), &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// CollectionDetails fetches a movie collection.
func (c *Client) CollectionDetails(ctx context.Context, collectionID int) (*CollectionDetails, error) {
	var details CollectionDetails
	endpoint := fmt.Sprintf("%s/collection/%d", c.baseURL, collectionID)
	if err := c.doRequest(ctx, endpoint, c.params(false), &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *Client) params(withCredits bool) url.Values {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)
	if withCredits {
		params.Set("append_to_response", "credits")
	}
	return params
}

// doRequest performs an HTTP GET and decodes the JSON response into result.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	if c.apiKey == "" {
		return ErrAPIKeyMissing
	}

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", endpoint).Msg("HTTP request failed")
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil {
			c.logger.Error().
				Int("status", resp.StatusCode).
				Str("message", errResp.StatusMessage).
				Msg("TMDB API error")
		}

		switch resp.StatusCode {
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: invalid API key", ErrAPIError)
		default:
			return fmt.Errorf("%w: status %d", ErrAPIError, resp.StatusCode)
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode TMDB response: %w", err)
	}

	return nil
}
