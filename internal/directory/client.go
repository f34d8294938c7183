// Package directory is the HTTP client for the external user-directory /
// work-queue service. The engine consumes it as an opaque CRUD API: it
// lists the current work items and proxies user-account management, and
// never mutates a work item.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vigilhub/attention-escalator/internal/domain"
)

// User is the opaque account record the directory service returns.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Client talks to the directory service. The base URL is injected from
// config so tests can point to a local mock.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListWorkItems fetches the current work-item collection. The directory
// service refreshes it at its own cadence; the engine only reads.
func (c *Client) ListWorkItems(ctx context.Context) ([]domain.WorkItem, error) {
	var items []domain.WorkItem
	if err := c.do(ctx, http.MethodGet, "/items", nil, &items); err != nil {
		return nil, fmt.Errorf("list work items: %w", err)
	}
	return items, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/users/"+id, nil, &u); err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return &u, nil
}

func (c *Client) CreateUser(ctx context.Context, u User) (*User, error) {
	var created User
	if err := c.do(ctx, http.MethodPost, "/users", u, &created); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &created, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, u User) (*User, error) {
	var updated User
	if err := c.do(ctx, http.MethodPut, "/users/"+id, u, &updated); err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	return &updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/users/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode >= 300:
		return fmt.Errorf("unexpected directory status: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
