// Package api provides the HTTP client for the remote task API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Ensure Client implements the domain ports.
var (
	_ domain.TaskService   = (*Client)(nil)
	_ domain.UserDirectory = (*Client)(nil)
)

// Client is a thin request layer over the task collection resource.
// Each operation issues exactly one HTTP request: no retries, no caching.
type Client struct {
	http    *http.Client
	baseURL string
}

// New creates a Client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithHTTPClient creates a Client with a custom http.Client.
// This is useful for testing.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

// ListByEmail retrieves the full unfiltered task set for the owner email.
func (c *Client) ListByEmail(ctx context.Context, email string) ([]domain.Task, error) {
	var tasks []domain.Task
	err := c.do(ctx, http.MethodGet, "/tasks/email/"+url.PathEscape(email), nil, &tasks)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Get retrieves a single task by its server-assigned identifier.
func (c *Client) Get(ctx context.Context, id string) (*domain.Task, error) {
	if id == "" {
		return nil, domain.ErrInvalidTaskID
	}
	var task domain.Task
	err := c.do(ctx, http.MethodGet, "/tasks/"+url.PathEscape(id), nil, &task)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Create stores a new task and returns it with the server-assigned id.
// The placeholder id of an optimistic insert is stripped before sending.
func (c *Client) Create(ctx context.Context, task domain.Task) (*domain.Task, error) {
	task.ID = ""
	var created domain.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", task, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the full task record and returns the stored state.
func (c *Client) Update(ctx context.Context, id string, task domain.Task) (*domain.Task, error) {
	if id == "" {
		return nil, domain.ErrInvalidTaskID
	}
	var updated domain.Task
	err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id), task, &updated)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes a task by identifier.
func (c *Client) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidTaskID
	}
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil)
}

// registerResponse is the backend's envelope for user registration.
type registerResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RegisterUser stores the profile document under /users/{email}.
func (c *Client) RegisterUser(ctx context.Context, rec domain.UserRecord) error {
	var resp registerResponse
	err := c.do(ctx, http.MethodPost, "/users/"+url.PathEscape(rec.Email), rec, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		if resp.Message == "" {
			resp.Message = "registration rejected"
		}
		return fmt.Errorf("register user: %s", resp.Message)
	}
	return nil
}

// do issues one request and decodes the JSON response into out (if non-nil).
// Transport failures become *domain.NetworkError; non-2xx responses become
// *domain.ServerError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &domain.ServerError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// isStatus reports whether err is a ServerError with the given status.
func isStatus(err error, status int) bool {
	var se *domain.ServerError
	return errors.As(err, &se) && se.StatusCode == status
}
