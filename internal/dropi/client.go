package dropi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var httpClient = &http.Client{
	Timeout: 60 * time.Second,
}

// ErrInvalidBody is returned when a 2xx response is not a JSON document.
var ErrInvalidBody = errors.New("dropi: response body is not valid JSON")

// StatusError reports a non-2xx answer from the products index.
type StatusError struct {
	StatusCode int
	// Title holds the <title> of an HTML error page, if the gateway sent one.
	Title string
}

func (e *StatusError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("dropi status %d: %s", e.StatusCode, e.Title)
	}
	return fmt.Sprintf("dropi status %d", e.StatusCode)
}

type Client struct {
	URL   string
	Token string
	HTTP  *http.Client
}

func NewClient(url, token string) *Client {
	return &Client{URL: url, Token: token, HTTP: httpClient}
}

// FetchFavorites sends one products index query and returns the response
// body untouched. No retry, no pagination.
func (c *Client) FetchFavorites(ctx context.Context, pageSize int) ([]byte, error) {
	payload, err := json.Marshal(FavoritesRequest(pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", c.URL, err)
	}
	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}
	req.Header.Set("X-Authorization", "Bearer "+c.Token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", c.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", c.URL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Title: PageTitle(body)}
	}

	if !json.Valid(body) {
		return nil, ErrInvalidBody
	}
	return body, nil
}
