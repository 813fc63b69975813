package qbittorrent

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Torrent is one entry of the /api/v2/torrents/info response.
type Torrent struct {
	Hash     string  `json:"hash"`
	Name     string  `json:"name"`
	State    string  `json:"state"`
	Size     int64   `json:"size"`
	Progress float64 `json:"progress"`
	DLSpeed  int64   `json:"dlspeed"`
	UPSpeed  int64   `json:"upspeed"`
	Category string  `json:"category"`
	Ratio    float64 `json:"ratio"`
	ETA      int64   `json:"eta"`
}

// ListFilters narrows the torrent listing. Zero-valued fields are omitted.
type ListFilters struct {
	Filter   string
	Category string
	Sort     string
	Hashes   string
}

// Client talks to the qBittorrent Web API. The session cookie obtained at
// login is held for the lifetime of the client; single-threaded use assumed.
type Client struct {
	baseURL    string
	username   string
	password   string
	cookie     *http.Cookie
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(baseURL, username, password string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger.With().Str("component", "qbittorrent").Logger(),
	}
}

// Login authenticates against the Web API and stores the SID session
// cookie. Returns false on any failure; details go to the log.
func (c *Client) Login(ctx context.Context) bool {
	data := url.Values{}
	data.Set("username", c.username)
	data.Set("password", c.password)

	loginURL := c.baseURL + "/api/v2/auth/login"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, strings.NewReader(data.Encode()))
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to build login request")
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("login request to qBittorrent failed")
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("response", string(body)).
			Msg("qBittorrent login failed")
		return false
	}

	// The API answers 200 with the literal body "Fails." on bad credentials.
	if string(body) == "Fails." {
		c.logger.Error().Msg("invalid qBittorrent credentials")
		return false
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "SID" {
			c.cookie = cookie
			break
		}
	}
	if c.cookie == nil {
		c.logger.Error().Msg("no SID cookie received from qBittorrent")
		return false
	}

	c.logger.Info().Msg("logged in to qBittorrent")
	return true
}

// ListTorrents returns the torrents matching filters, logging in first if
// no session is held. Any failure yields an empty list, never an error.
func (c *Client) ListTorrents(ctx context.Context, filters ListFilters) []Torrent {
	if c.cookie == nil {
		if !c.Login(ctx) {
			c.logger.Warn().Msg("cannot list torrents: login failed")
			return nil
		}
	}

	params := url.Values{}
	if filters.Filter != "" {
		params.Set("filter", filters.Filter)
	}
	if filters.Category != "" {
		params.Set("category", filters.Category)
	}
	if filters.Sort != "" {
		params.Set("sort", filters.Sort)
	}
	if filters.Hashes != "" {
		params.Set("hashes", filters.Hashes)
	}

	listURL := c.baseURL + "/api/v2/torrents/info"
	if len(params) > 0 {
		listURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to build torrent list request")
		return nil
	}
	req.AddCookie(c.cookie)
	req.Header.Set("Referer", c.baseURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Msg("torrent list request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("response", string(body)).
			Msg("failed to fetch torrent list")
		return nil
	}

	var torrents []Torrent
	if err := json.NewDecoder(resp.Body).Decode(&torrents); err != nil {
		c.logger.Error().Err(err).Msg("failed to decode torrent list")
		return nil
	}

	c.logger.Info().Int("count", len(torrents)).Msg("torrent list fetched")
	return torrents
}
