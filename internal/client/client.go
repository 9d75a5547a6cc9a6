package client

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/profenger/feedback-hub/internal/domain"
)

// ErrUnauthorized is returned when a protected call is rejected. The cached
// session is cleared first, so the caller is back in the logged-out state and
// must sign in again. This is how token expiry is discovered; there is no
// automatic refresh.
var ErrUnauthorized = errors.New("not signed in or session expired")

// Client handles HTTP communication with the feedback-hub API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   *SessionStore
}

func New(baseURL string, sessions *SessionStore) *Client {
	return &Client{
		baseURL: baseURL + "/api",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		sessions: sessions,
	}
}

type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		Email string      `json:"email"`
		Role  domain.Role `json:"role"`
	} `json:"user"`
}

// Login authenticates and persists the returned session.
func (c *Client) Login(email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}

	var resp loginResponse
	if err := c.do(http.MethodPost, "/auth/login", body, &resp, false); err != nil {
		return nil, err
	}

	session := &Session{
		LoggedIn: true,
		Email:    resp.User.Email,
		Role:     resp.User.Role,
		Token:    resp.Token,
	}
	if err := c.sessions.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Logout clears the cached session. Tokens are stateless server-side, so this
// is the entire logout operation.
func (c *Client) Logout() error {
	return c.sessions.Clear()
}

// Current returns the cached session, or nil when signed out.
func (c *Client) Current() *Session {
	return c.sessions.Load()
}

func (c *Client) ListFeedback() ([]domain.FeedbackSubmission, error) {
	var out []domain.FeedbackSubmission
	if err := c.do(http.MethodGet, "/feedback", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListPrompts() ([]domain.PromptSubmission, error) {
	var out []domain.PromptSubmission
	if err := c.do(http.MethodGet, "/prompts", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListUsers() ([]domain.User, error) {
	var out []domain.User
	if err := c.do(http.MethodGet, "/users", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser creates an admin account, returning its ID.
func (c *Client) CreateUser(email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}

	var resp struct {
		Success    bool   `json:"success"`
		InsertedID string `json:"insertedId"`
	}
	if err := c.do(http.MethodPost, "/users", body, &resp, true); err != nil {
		return "", err
	}
	return resp.InsertedID, nil
}

func (c *Client) do(method, path string, body, out interface{}, protected bool) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Attach the cached token when present; without it the request still goes
	// out and the server rejects it.
	if protected {
		if session := c.sessions.Load(); session != nil {
			req.Header.Set("Authorization", "Bearer "+session.Token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && protected {
		_ = c.sessions.Clear()
		return ErrUnauthorized
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
