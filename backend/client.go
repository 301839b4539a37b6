// Package backend is the typed HTTP client for the remote trading API that
// owns all suppliers, items and quotations. The dashboard never persists
// these entities itself; every read and mutation goes through this client.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"supplydesk/config"
)

// TokenFunc yields the bearer token for the current request, or an empty
// string when the caller is not logged in. Handlers wire this to the
// session resolved by the auth middleware.
type TokenFunc func(ctx context.Context) string

type Client struct {
	cfg        config.Config
	httpClient *http.Client
	limiter    *rateLimiter
	token      TokenFunc
}

func NewClient(cfg config.Config, token TokenFunc) *Client {
	if token == nil {
		token = func(context.Context) string { return "" }
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.BackendTimeoutMs) * time.Millisecond},
		limiter:    newRateLimiter(cfg.BackendRateRPS),
		token:      token,
	}
}

// get performs an authenticated GET and decodes the JSON response into out.
// Retryable statuses are retried with jittered exponential backoff; GETs are
// the only requests ever retried.
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out any) error {
	body, err := c.fetch(ctx, http.MethodGet, endpoint, params, nil, true)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// send performs an authenticated mutation (POST/PUT/PATCH/DELETE) with a JSON
// body. Mutations are never retried: the backend call may have gone through
// even when the response was lost.
func (c *Client) send(ctx context.Context, method, endpoint string, payload any, out any) error {
	var reqBody []byte
	if payload != nil {
		var err error
		reqBody, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, endpoint, err)
		}
	}
	body, err := c.fetch(ctx, method, endpoint, nil, reqBody, false)
	if err != nil {
		return err
	}
	return decode(body, out)
}

func decode(body []byte, out any) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &APIError{Message: fmt.Sprintf("unexpected response body: %v", err)}
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, method, endpoint string, params map[string]string, reqBody []byte, retryable bool) ([]byte, error) {
	u, err := c.endpointURL(endpoint, params)
	if err != nil {
		return nil, err
	}

	attempts := 1
	if retryable && c.cfg.BackendRetryMax > 1 {
		attempts = c.cfg.BackendRetryMax
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		c.limiter.waitTurn()

		var bodyReader io.Reader
		if reqBody != nil {
			bodyReader = bytes.NewReader(reqBody)
		}
		req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
		if err != nil {
			return nil, err
		}
		if token := c.token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		req.Header.Set("Accept", "application/json")
		if reqBody != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = &APIError{Message: err.Error()}
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			lastErr = &APIError{Message: readErr.Error()}
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			apiErr := newAPIError(resp.StatusCode, body)
			if retryable && isRetryableStatus(resp.StatusCode) && attempt < attempts {
				backoff := time.Duration(250*(1<<(attempt-1))+rand.Intn(100)) * time.Millisecond
				time.Sleep(backoff)
				lastErr = apiErr
				continue
			}
			return nil, apiErr
		}

		return body, nil
	}

	if lastErr == nil {
		lastErr = errors.New("backend request failed")
	}
	return nil, lastErr
}

func (c *Client) endpointURL(endpoint string, params map[string]string) (string, error) {
	baseURL := strings.TrimRight(c.cfg.BackendBaseURL, "/") + "/"
	u, err := url.Parse(baseURL + strings.TrimLeft(endpoint, "/"))
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, v := range params {
		if strings.TrimSpace(v) != "" {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
