// Package api is the HTTP client for the project management backend.
// It exposes exactly the endpoints the calendar needs; responses arrive
// in a {"status": "ok", ...} envelope and failures carry a detail
// message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tunnelworks/termin/pkg/task"
)

// Error is a non-2xx backend response.
type Error struct {
	Code   int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned %d", e.Code)
	}
	return fmt.Sprintf("backend returned %d: %s", e.Code, e.Detail)
}

// Client talks to one backend instance. The zero value is not usable;
// construct with New.
type Client struct {
	base   string
	client *http.Client
	log    *log.Logger
}

// New builds a client for the given base URL. Request traces are logged
// at debug level when TERMIN_DEBUG is set.
func New(baseURL string) *Client {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "api",
		Level:  log.ErrorLevel,
	})
	if os.Getenv("TERMIN_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		client: &http.Client{Timeout: 30 * time.Second},
		log:    logger,
	}
}

// LoginResult is the session payload from /login and /login/2fa. Status
// is "2fa_required" when the password was accepted but a second factor
// is pending; only that interstitial payload echoes the email back, the
// final success payload does not.
type LoginResult struct {
	Status string `json:"status"`
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// TwoFARequired reports whether the login still needs a 2FA code.
func (r *LoginResult) TwoFARequired() bool {
	return r.Status == "2fa_required"
}

// Login authenticates with email and password. The backend takes these
// as form fields, not JSON.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.base+"/login", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out LoginResult
	if err := c.roundTrip(req, &out); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &out, nil
}

// Verify2FA completes a login the backend answered with 2fa_required.
func (c *Client) Verify2FA(ctx context.Context, email, code string) (*LoginResult, error) {
	var out LoginResult
	err := c.do(ctx, http.MethodPost, "/login/2fa", nil,
		map[string]string{"email": email, "code": code}, &out)
	if err != nil {
		return nil, fmt.Errorf("verify 2fa: %w", err)
	}
	return &out, nil
}

type todosEnvelope struct {
	Status string      `json:"status"`
	Todos  []task.Todo `json:"todos"`
}

type todoEnvelope struct {
	Status string    `json:"status"`
	Todo   task.Todo `json:"todo"`
}

type projectsEnvelope struct {
	Status   string         `json:"status"`
	Projects []task.Project `json:"projects"`
	Total    int            `json:"total"`
}

// UserTodos lists the personal todos of userID.
func (c *Client) UserTodos(ctx context.Context, userID int64) ([]task.Todo, error) {
	q := url.Values{"requesting_user_id": {itoa(userID)}}
	var out todosEnvelope
	path := fmt.Sprintf("/users/%d/todos", userID)
	if err := c.do(ctx, http.MethodGet, path, q, nil, &out); err != nil {
		return nil, fmt.Errorf("fetch personal todos: %w", err)
	}
	return out.Todos, nil
}

// CreateUserTodo creates a personal todo and returns the stored copy.
func (c *Client) CreateUserTodo(ctx context.Context, userID int64, change task.Change) (*task.Todo, error) {
	q := url.Values{"requesting_user_id": {itoa(userID)}}
	var out todoEnvelope
	path := fmt.Sprintf("/users/%d/todos", userID)
	if err := c.do(ctx, http.MethodPost, path, q, change, &out); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return &out.Todo, nil
}

// UpdateUserTodo applies a partial update to a personal todo.
func (c *Client) UpdateUserTodo(ctx context.Context, userID, todoID int64, change task.Change) error {
	q := url.Values{"requesting_user_id": {itoa(userID)}}
	path := fmt.Sprintf("/users/%d/todos/%d", userID, todoID)
	if err := c.do(ctx, http.MethodPut, path, q, change, nil); err != nil {
		return fmt.Errorf("update todo %d: %w", todoID, err)
	}
	return nil
}

// DeleteUserTodo deletes a personal todo.
func (c *Client) DeleteUserTodo(ctx context.Context, userID, todoID int64) error {
	q := url.Values{"requesting_user_id": {itoa(userID)}}
	path := fmt.Sprintf("/users/%d/todos/%d", userID, todoID)
	if err := c.do(ctx, http.MethodDelete, path, q, nil, nil); err != nil {
		return fmt.Errorf("delete todo %d: %w", todoID, err)
	}
	return nil
}

// Projects lists the projects visible to userID, including their
// interim and start/end dates.
func (c *Client) Projects(ctx context.Context, userID int64) ([]task.Project, error) {
	q := url.Values{"user_id": {itoa(userID)}}
	var out projectsEnvelope
	if err := c.do(ctx, http.MethodGet, "/projects", q, nil, &out); err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}
	return out.Projects, nil
}

// ProjectTodos lists the todos of one project. The caller filters for
// the session user; the backend returns all members' todos.
func (c *Client) ProjectTodos(ctx context.Context, projectID, userID int64) ([]task.Todo, error) {
	q := url.Values{"user_id": {itoa(userID)}}
	var out todosEnvelope
	path := fmt.Sprintf("/projects/%d/todos", projectID)
	if err := c.do(ctx, http.MethodGet, path, q, nil, &out); err != nil {
		return nil, fmt.Errorf("fetch todos for project %d: %w", projectID, err)
	}
	return out.Todos, nil
}

// UpdateProjectTodo applies a partial update to a project todo.
func (c *Client) UpdateProjectTodo(ctx context.Context, projectID, todoID, userID int64, change task.Change) error {
	q := url.Values{"user_id": {itoa(userID)}}
	path := fmt.Sprintf("/projects/%d/todos/%d", projectID, todoID)
	if err := c.do(ctx, http.MethodPut, path, q, change, nil); err != nil {
		return fmt.Errorf("update project todo %d: %w", todoID, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.roundTrip(req, out)
}

func (c *Client) roundTrip(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.log.Debug("request", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := struct {
			Detail string `json:"detail"`
		}{}
		_ = json.NewDecoder(resp.Body).Decode(&detail)
		return &Error{Code: resp.StatusCode, Detail: detail.Detail}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
