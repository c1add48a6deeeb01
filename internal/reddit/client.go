// Package reddit implements the content-source and publisher collaborators
// against the Reddit API, plus a read-only scrape fallback for running
// without API credentials.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"scoreboard-bot/internal/types"
)

const (
	defaultAPIBase  = "https://oauth.reddit.com"
	defaultAuthBase = "https://www.reddit.com"
)

// Credentials holds the script-app OAuth credentials. All of them come from
// the environment; none are ever written to config files.
type Credentials struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	UserAgent    string
}

func CredentialsFromEnv() Credentials {
	return Credentials{
		ClientID:     os.Getenv("REDDIT_CLIENT_ID"),
		ClientSecret: os.Getenv("REDDIT_CLIENT_SECRET"),
		Username:     os.Getenv("REDDIT_USERNAME"),
		Password:     os.Getenv("REDDIT_PASSWORD"),
		UserAgent:    os.Getenv("REDDIT_USER_AGENT"),
	}
}

func (c Credentials) Complete() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.Username != "" && c.Password != "" && c.UserAgent != ""
}

// Client is a minimal OAuth JSON client for the Reddit API. Requests share a
// rate limiter so a run stays inside the per-minute quota regardless of how
// many communities it sweeps.
type Client struct {
	httpc    *http.Client
	limiter  *rate.Limiter
	creds    Credentials
	apiBase  string
	authBase string

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewClient(creds Credentials) *Client {
	return &Client{
		httpc:    &http.Client{Timeout: 15 * time.Second},
		limiter:  rate.NewLimiter(rate.Every(time.Second), 1),
		creds:    creds,
		apiBase:  defaultAPIBase,
		authBase: defaultAuthBase,
	}
}

// ensureToken fetches or refreshes the password-grant access token.
func (c *Client) ensureToken(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return nil
	}

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", c.creds.Username)
	form.Set("password", c.creds.Password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authBase+"/api/v1/access_token", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.creds.ClientID, c.creds.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.creds.UserAgent)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: token request: %v", types.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: token request http %d", types.ErrSourceUnavailable, resp.StatusCode)
	}

	var tr struct {
		AccessToken string  `json:"access_token"`
		ExpiresIn   float64 `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return fmt.Errorf("%w: token decode: %v", types.ErrSourceUnavailable, err)
	}
	if tr.AccessToken == "" {
		return fmt.Errorf("%w: empty access token", types.ErrSourceUnavailable)
	}

	c.token = tr.AccessToken
	// Refresh a minute early so a long sweep never straddles expiry.
	c.tokenExpiry = time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - time.Minute)
	return nil
}

// getJSON performs a rate-limited authenticated GET and decodes the body.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	if err := c.ensureToken(ctx); err != nil {
		return err
	}

	u := c.apiBase + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	c.setAuthHeaders(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: reddit http %d for %s", types.ErrSourceUnavailable, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", types.ErrSourceUnavailable, path, err)
	}
	return nil
}

// postForm performs a rate-limited authenticated form POST and decodes the
// response body.
func (c *Client) postForm(ctx context.Context, path string, form url.Values, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	if err := c.ensureToken(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	c.setAuthHeaders(req)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("reddit http %d for %s", resp.StatusCode, path)
	}

	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return fmt.Errorf("decoding %s: %v", path, err)
		}
	}
	return nil
}

func (c *Client) setAuthHeaders(req *http.Request) {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", c.creds.UserAgent)
}
