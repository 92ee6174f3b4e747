package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client fetches rendered search-result markup through a scrape-proxy API
// (ScraperAPI-style: api key + target URL as query params). The proxy
// handles the anti-bot dance; we just GET and read.
type Client struct {
	endpoint string
	apiKey   string
	hc       *http.Client
	limiter  *TargetLimiter
}

func New(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		hc:       &http.Client{Timeout: 70 * time.Second},
		limiter:  NewTargetLimiter(1, 2),
	}
}

// FetchDocument retrieves the markup behind target and returns it as a
// string for the extraction pipeline.
func (c *Client) FetchDocument(ctx context.Context, target string) (string, error) {
	if err := c.limiter.WaitURL(ctx, target); err != nil {
		return "", err
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("scraper endpoint: %w", err)
	}
	q := u.Query()
	q.Set("api_key", c.apiKey)
	q.Set("url", target)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "jobsift/1.0 (+local)")

	res, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("scraper get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return "", fmt.Errorf("scraper status %d for %s", res.StatusCode, target)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("scraper read body: %w", err)
	}
	return string(body), nil
}
