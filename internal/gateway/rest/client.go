// Package rest is the HTTP client for the mock API. It exposes the same
// typed collection surface as the in-process gateway, so the thunk services
// can run against either without caring which one they got.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"crm-backoffice/internal/domain"
)

// Client speaks the /api wire contract against one base URL.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewClient builds a Client for the given base URL, e.g. "http://localhost:8080".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken attaches an access token to every subsequent request.
func (c *Client) SetToken(token string) {
	c.token = token
}

// SignIn exchanges credentials for a session. Rejected credentials map to
// domain.ErrInvalidCredentials.
func (c *Client) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var session domain.Session
	if err := c.do(ctx, http.MethodPost, "/api/auth", nil, body, http.StatusOK, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, want int, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return statusError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func statusError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusForbidden:
		return domain.ErrInvalidCredentials
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return fmt.Errorf("gateway: %s (status %d)", payload.Error, resp.StatusCode)
	}
	return fmt.Errorf("gateway: unexpected status %d", resp.StatusCode)
}
