package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"minerva/pkg/errors"
	"minerva/pkg/logger"
)

const defaultBaseURL = "https://www.googleapis.com/customsearch/v1"

// Result is a single web search hit.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Config holds Google Programmable Search credentials and limits.
type Config struct {
	APIKey         string
	EngineID       string
	MaxResults     int
	Timeout        time.Duration
	RequestsPerMin float64
	BaseURL        string
}

// Client queries the Google Programmable Search JSON API with client-side
// rate limiting and retry on transient failures.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	baseURL string
	log     *logger.Logger
}

// NewClient constructs a search client. APIKey and EngineID must be set;
// use SearchConfig.Configured() before constructing.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" || cfg.EngineID == "" {
		return nil, errors.ErrSearchNotConfigured
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 3
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RequestsPerMin <= 0 {
		cfg.RequestsPerMin = 60
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerMin/60.0), 1),
		baseURL: baseURL,
		log:     logger.Get().With("component", "search_client"),
	}, nil
}

type apiResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Search executes a query and returns up to MaxResults hits.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	if query == "" {
		return nil, errors.Wrap(errors.ErrInvalidInput, "empty search query")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(errors.ErrRateLimitExceeded, err.Error())
	}

	var lastErr error
	delay := 500 * time.Millisecond
	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		results, retryable, err := c.doSearch(ctx, query)
		if err == nil {
			return results, nil
		}
		lastErr = err
		if !retryable {
			break
		}
		c.log.Warnw("Search request failed, retrying", "attempt", attempt+1, "error", err)
	}

	return nil, lastErr
}

func (c *Client) doSearch(ctx context.Context, query string) ([]Result, bool, error) {
	params := url.Values{}
	params.Set("key", c.cfg.APIKey)
	params.Set("cx", c.cfg.EngineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(c.cfg.MaxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to build search request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, true, errors.Wrap(errors.ErrSearchFailed, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, true, errors.Wrap(errors.ErrSearchFailed, err.Error())
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, true, errors.Wrapf(errors.ErrRateLimitExceeded, "search API returned %d", resp.StatusCode)
	case resp.StatusCode >= 500:
		return nil, true, errors.Wrapf(errors.ErrSearchFailed, "search API returned %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, false, errors.Wrapf(errors.ErrSearchFailed, "search API returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, false, errors.Wrap(err, "failed to decode search response")
	}
	if parsed.Error != nil {
		return nil, false, errors.Wrapf(errors.ErrSearchFailed, "search API error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}

	results := make([]Result, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		results = append(results, Result{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
		})
	}

	return results, false, nil
}

// FormatResults renders hits as a compact numbered list for model context.
func FormatResults(query string, results []Result) string {
	if len(results) == 0 {
		return fmt.Sprintf("No results found for %q.", query)
	}

	out := fmt.Sprintf("Search results for %q:\n", query)
	for i, r := range results {
		out += fmt.Sprintf("%d. %s\n   %s\n   %s\n", i+1, r.Title, r.Snippet, r.Link)
	}
	return out
}
