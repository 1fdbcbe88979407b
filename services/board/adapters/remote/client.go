package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bhaktofmahakal/Kanban-board/services/board/core"
)

// DefaultURL is used when no API URL is configured.
const DefaultURL = "http://localhost:3000/api"

const maxErrorBody = 64 << 10

type Client struct {
	log     *slog.Logger
	baseURL string
	http    *http.Client
}

// NewClient talks to the tasks API at apiURL. Every call gives up after
// timeout and reports core.ErrUnavailable.
func NewClient(apiURL string, timeout time.Duration, log *slog.Logger) (*Client, error) {
	base := NormalizeURL(apiURL)
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", apiURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api url %q: scheme must be http or https", apiURL)
	}

	return &Client{
		log:     log,
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// NormalizeURL strips one trailing slash and appends /api when missing.
func NormalizeURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		u = DefaultURL
	}
	u = strings.TrimSuffix(u, "/")
	if !strings.HasSuffix(u, "/api") {
		u += "/api"
	}
	return u
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) ListTasks(ctx context.Context) ([]core.Task, error) {
	out := []core.Task{}
	if err := c.do(ctx, http.MethodGet, "/tasks", false, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []core.Task{}
	}
	return out, nil
}

func (c *Client) CreateTask(ctx context.Context, in core.TaskInput) (core.Task, error) {
	var t core.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", false, in, &t); err != nil {
		return core.Task{}, err
	}
	return t, nil
}

func (c *Client) PatchTask(ctx context.Context, id string, p core.TaskPatch) (core.Task, error) {
	var t core.Task
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+url.PathEscape(id), true, p, &t); err != nil {
		return core.Task{}, err
	}
	return t, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), true, nil, nil)
}

var _ core.Tasks = (*Client)(nil)

// ---- helpers

// do sends one request. byID marks routes addressing a single task, the
// only ones where a 404 means the task is gone.
func (c *Client) do(ctx context.Context, method, path string, byID bool, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// the caller gave up; that is not an outage
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(ctxErr, context.DeadlineExceeded) {
			return ctxErr
		}
		return fmt.Errorf("%w: %s %s: %v", core.ErrUnavailable, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("tasks api call", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapHTTPErr(resp, byID)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s response: %v", core.ErrUnavailable, method, path, err)
	}
	return nil
}

// mapHTTPErr keeps 400, and 404 on a task route, as domain errors; every
// other failure status means the API cannot serve the request.
func mapHTTPErr(resp *http.Response, byID bool) error {
	msg := errorMessage(resp)

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", core.ErrValidation, msg)
	case http.StatusNotFound:
		if byID {
			return core.ErrNotFound
		}
		return fmt.Errorf("%w: status %d: %s", core.ErrUnavailable, resp.StatusCode, msg)
	default:
		return fmt.Errorf("%w: status %d: %s", core.ErrUnavailable, resp.StatusCode, msg)
	}
}

func errorMessage(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	if s := strings.TrimSpace(string(raw)); s != "" {
		return s
	}
	return http.StatusText(resp.StatusCode)
}
