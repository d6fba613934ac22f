// Package client calls the portfolio REST API the way the browser app does:
// JSON bodies, an optional bearer token and exactly one attempt per call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dileepkakara/portfolio/internal/models"
)

// APIError is a non-2xx response. Message is the server's "error" field
// when it sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api status %d", e.Status)
	}
	return fmt.Sprintf("api status %d: %s", e.Status, e.Message)
}

// ServerMessage returns the server's error text, or "" for transport errors
// and responses without one.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http = &http.Client{Timeout: d} }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithToken returns a copy that sends the bearer token on every call.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = strings.TrimSpace(token)
	return &cp
}

func (c *Client) BaseURL() string { return c.baseURL }
func (c *Client) Token() string   { return c.token }

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&payload); err == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

type credentials struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", credentials{Email: email, Password: password}, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) Register(ctx context.Context, fullName, email, password string) (string, error) {
	var out tokenResponse
	body := credentials{FullName: fullName, Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Logout revokes the client's token on the server.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// ProjectInput is the body of project create and update calls.
type ProjectInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	LiveLink    string   `json:"liveLink"`
	GithubLink  string   `json:"githubLink"`
}

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	err := c.do(ctx, http.MethodGet, "/api/projects", nil, &out)
	return out, err
}

func (c *Client) CreateProject(ctx context.Context, in ProjectInput) (models.Project, error) {
	var out models.Project
	err := c.do(ctx, http.MethodPost, "/api/projects", in, &out)
	return out, err
}

func (c *Client) UpdateProject(ctx context.Context, id string, in ProjectInput) (models.Project, error) {
	var out models.Project
	err := c.do(ctx, http.MethodPut, "/api/projects/"+id, in, &out)
	return out, err
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+id, nil, nil)
}

type SkillInput struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (c *Client) ListSkills(ctx context.Context) ([]models.Skill, error) {
	var out []models.Skill
	err := c.do(ctx, http.MethodGet, "/api/skills", nil, &out)
	return out, err
}

func (c *Client) CreateSkill(ctx context.Context, in SkillInput) (models.Skill, error) {
	var out models.Skill
	err := c.do(ctx, http.MethodPost, "/api/skills", in, &out)
	return out, err
}

func (c *Client) UpdateSkill(ctx context.Context, id string, in SkillInput) (models.Skill, error) {
	var out models.Skill
	err := c.do(ctx, http.MethodPut, "/api/skills/"+id, in, &out)
	return out, err
}

func (c *Client) DeleteSkill(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/skills/"+id, nil, nil)
}

// AboutInput is sent in full; empty strings clear optional fields.
type AboutInput struct {
	Text         string `json:"text"`
	DateOfBirth  string `json:"dateOfBirth"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Education    string `json:"education"`
	ProfilePhoto string `json:"profilePhoto"`
	CVLink       string `json:"cvLink"`
}

// GetAbout returns nil when no profile has been saved.
func (c *Client) GetAbout(ctx context.Context) (*models.About, error) {
	var out *models.About
	if err := c.do(ctx, http.MethodGet, "/api/about", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateAbout(ctx context.Context, in AboutInput) (models.About, error) {
	var out models.About
	err := c.do(ctx, http.MethodPut, "/api/about", in, &out)
	return out, err
}

type MessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

func (c *Client) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var out []models.ContactMessage
	err := c.do(ctx, http.MethodGet, "/api/messages", nil, &out)
	return out, err
}

func (c *Client) CreateMessage(ctx context.Context, in MessageInput) (models.ContactMessage, error) {
	var out models.ContactMessage
	err := c.do(ctx, http.MethodPost, "/api/messages", in, &out)
	return out, err
}

func (c *Client) DeleteMessage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/messages/"+id, nil, nil)
}

type countResponse struct {
	Count int64 `json:"count"`
}

// TrackVisit records one visit and returns the new total.
func (c *Client) TrackVisit(ctx context.Context) (int64, error) {
	var out countResponse
	if err := c.do(ctx, http.MethodGet, "/api/visitors", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *Client) VisitorCount(ctx context.Context) (int64, error) {
	var out countResponse
	if err := c.do(ctx, http.MethodGet, "/api/visitors/count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}
