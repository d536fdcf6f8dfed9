// Package playstore adapts the Play Store scraper gateway to the
// port.StoreCatalog contract. The gateway exposes listing, search and review
// endpoints as JSON over HTTP.
package playstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/port"
)

// Compile-time interface check.
var _ port.StoreCatalog = (*Client)(nil)

// Client implements port.StoreCatalog against the scraper gateway API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new scraper gateway client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// listingResponse mirrors the gateway's app details payload. Score is a
// pointer because the store omits ratings for apps with too few reviews.
type listingResponse struct {
	AppID       string   `json:"appId"`
	Title       string   `json:"title"`
	Score       *float64 `json:"score"`
	Installs    string   `json:"installs"`
	ReviewCount int      `json:"reviews"`
}

type searchResponse struct {
	Results []struct {
		AppID string `json:"appId"`
		Title string `json:"title"`
	} `json:"results"`
}

type reviewsResponse struct {
	Reviews []struct {
		Content string `json:"content"`
	} `json:"reviews"`
}

// Lookup resolves a store identifier to its listing.
func (c *Client) Lookup(ctx context.Context, identifierOrQuery string) (model.Listing, error) {
	u := fmt.Sprintf("%s/api/apps/%s", c.baseURL, url.PathEscape(identifierOrQuery))

	var result listingResponse
	if err := c.getJSON(ctx, u, &result); err != nil {
		return model.Listing{}, err
	}

	listing := model.Listing{
		Title:       result.Title,
		AppID:       result.AppID,
		ReviewCount: result.ReviewCount,
	}
	if result.Score != nil {
		listing.Rating = *result.Score
		listing.RatingAvailable = true
	}
	if result.Installs != "" {
		listing.Installs = result.Installs
		listing.InstallsAvailable = true
	}
	return listing, nil
}

// Search resolves a free-text name to ranked candidates.
func (c *Client) Search(ctx context.Context, query string) ([]port.SearchResult, error) {
	u := fmt.Sprintf("%s/api/search?q=%s", c.baseURL, url.QueryEscape(query))

	var result searchResponse
	if err := c.getJSON(ctx, u, &result); err != nil {
		return nil, err
	}

	results := make([]port.SearchResult, 0, len(result.Results))
	for _, hit := range result.Results {
		results = append(results, port.SearchResult{AppID: hit.AppID, Title: hit.Title})
	}
	return results, nil
}

// Reviews fetches up to query.MaxCount review texts for the app.
func (c *Client) Reviews(ctx context.Context, appID string, query port.ReviewQuery) ([]string, error) {
	u := fmt.Sprintf("%s/api/apps/%s/reviews?num=%s&hl=%s&gl=%s",
		c.baseURL,
		url.PathEscape(appID),
		strconv.Itoa(query.MaxCount),
		url.QueryEscape(query.Locale),
		url.QueryEscape(query.Region),
	)

	var result reviewsResponse
	if err := c.getJSON(ctx, u, &result); err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(result.Reviews))
	for _, review := range result.Reviews {
		if review.Content != "" {
			texts = append(texts, review.Content)
		}
		// The gateway is not trusted to honor num; enforce the cap here.
		if query.MaxCount > 0 && len(texts) == query.MaxCount {
			break
		}
	}
	return texts, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("scraper gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return port.ErrListingNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("scraper gateway error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
