// Package steam_webapi talks to the Steam Web API and the avatar CDN.
package steam_webapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL    = "https://api.steampowered.com"
	DefaultTimeout    = 8 * time.Second
	DefaultAvatarSize = 64

	// maxBodySize caps every response body read, JSON and images alike.
	maxBodySize = 10 << 20
)

// ErrNoPlayers is returned when the lookup succeeded but Steam knows no
// player with the requested id.
var ErrNoPlayers = errors.New("no players in response")

type PlayerSummary struct {
	SteamID     string `json:"steamid"`
	PersonaName string `json:"personaname"`
	ProfileURL  string `json:"profileurl"`
	Avatar      string `json:"avatar"`
	AvatarFull  string `json:"avatarfull"`
}

type playerSummariesResponse struct {
	Response struct {
		Players []PlayerSummary `json:"players"`
	} `json:"response"`
}

// Options configures a Client, zero values select the defaults.
type Options struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	AvatarSize int
	// HTTPClient replaces the default client, its Timeout is left alone.
	HTTPClient *http.Client
}

// Client performs profile lookups and avatar fetches. Every request is
// bounded by the configured timeout and never retried.
type Client struct {
	baseURL    string
	apiKey     string
	avatarSize int
	httpClient *http.Client
}

func NewClient(opts Options) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		avatarSize: opts.AvatarSize,
		httpClient: opts.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.avatarSize <= 0 {
		c.avatarSize = DefaultAvatarSize
	}
	if c.httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		c.httpClient = &http.Client{Timeout: timeout}
	}
	return c
}

// GetPlayerSummary returns the first player summary Steam has for steamID64.
func (c *Client) GetPlayerSummary(ctx context.Context, steamID64 string) (*PlayerSummary, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("steamids", steamID64)
	endpoint := c.baseURL + "/ISteamUser/GetPlayerSummaries/v2/?" + query.Encode()

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var data playerSummariesResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decoding player summaries: %w", err)
	}
	if len(data.Response.Players) == 0 {
		return nil, ErrNoPlayers
	}
	return &data.Response.Players[0], nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, redactKey(err, c.apiKey)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 response code: %v", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
}

// redactKey strips the API key from the request URL carried by transport
// errors, they end up in the log. The error chain is left intact.
func redactKey(err error, key string) error {
	var urlErr *url.Error
	if key == "" || !errors.As(err, &urlErr) {
		return err
	}
	for _, form := range []string{key, url.QueryEscape(key)} {
		urlErr.URL = strings.ReplaceAll(urlErr.URL, form, "REDACTED")
	}
	return err
}
