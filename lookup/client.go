// Package lookup resolves free-text food names against the external
// nutrition search endpoint.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mytheresa/go-calorie-service/models"
)

// Result is the first match returned for a query. Cal is the value as
// sent by the endpoint; CaloriesPer100g is its integer part.
type Result struct {
	Text            string
	Cal             decimal.Decimal
	CaloriesPer100g int
}

// NewResult builds a Result from the text and cal of a match.
func NewResult(text string, cal decimal.Decimal) Result {
	return Result{
		Text:            text,
		Cal:             cal,
		CaloriesPer100g: int(cal.IntPart()),
	}
}

type Client struct {
	url    string
	client *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		url:    endpoint,
		client: &http.Client{Timeout: timeout},
	}
}

// searchResponse is the body shape of the search endpoint. cal arrives
// either as a number or as a numeric string.
type searchResponse struct {
	Results []struct {
		Text string          `json:"text"`
		Cal  decimal.Decimal `json:"cal"`
	} `json:"results"`
}

// Lookup posts the query as the form field "term" and returns the first
// result. Every failure wraps models.ErrLookupFailed.
func (c *Client) Lookup(ctx context.Context, query string) (Result, error) {
	form := url.Values{}
	form.Set("term", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create lookup request: %w: %w", models.ErrLookupFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("failed to call lookup endpoint: %w: %w", models.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read lookup response: %w: %w", models.ErrLookupFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("lookup endpoint returned %d: %w", resp.StatusCode, models.ErrLookupFailed)
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return Result{}, fmt.Errorf("failed to parse lookup response: %w: %w", models.ErrLookupFailed, err)
	}
	if len(sr.Results) == 0 {
		return Result{}, fmt.Errorf("no match for %q: %w", query, models.ErrLookupFailed)
	}

	match := sr.Results[0]
	zap.S().Debugw("lookup matched", "query", query, "text", match.Text, "cal", match.Cal.String())

	return NewResult(match.Text, match.Cal), nil
}
