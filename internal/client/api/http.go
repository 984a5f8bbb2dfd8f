package api

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

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mkarlovs/snooze/internal/client/models"
	"github.com/mkarlovs/snooze/internal/common"
)

// HTTPClient talks JSON over HTTP to a story API endpoint.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewHTTPClient builds a client for the API at baseURL. The timeout applies
// per request; there is no retry.
func NewHTTPClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With().Str("component", "api").Logger(),
	}
}

type userPayload struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type storiesPayload struct {
	Stories []models.Story `json:"stories"`
}

type storyPayload struct {
	Story *models.Story `json:"story"`
}

type errorPayload struct {
	Error string `json:"error"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	body := map[string]string{"username": username, "password": password}
	var out userPayload
	if err := c.do(ctx, http.MethodPost, "/login", "", body, &out); err != nil {
		return nil, err
	}
	return userFrom(out)
}

func (c *HTTPClient) Signup(ctx context.Context, username, password, name string) (*models.User, error) {
	body := map[string]string{"username": username, "password": password, "name": name}
	var out userPayload
	if err := c.do(ctx, http.MethodPost, "/signup", "", body, &out); err != nil {
		return nil, err
	}
	return userFrom(out)
}

func (c *HTTPClient) ValidateToken(ctx context.Context, token, username string) (*models.User, error) {
	var out userPayload
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), token, nil, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		out.Token = token
	}
	return userFrom(out)
}

func (c *HTTPClient) ListStories(ctx context.Context) ([]models.Story, error) {
	var out storiesPayload
	if err := c.do(ctx, http.MethodGet, "/stories", "", nil, &out); err != nil {
		return nil, err
	}
	return out.Stories, nil
}

func (c *HTTPClient) CreateStory(ctx context.Context, token string, story NewStory) (*models.Story, error) {
	var out storyPayload
	if err := c.do(ctx, http.MethodPost, "/stories", token, story, &out); err != nil {
		return nil, err
	}
	if out.Story == nil {
		return nil, fmt.Errorf("malformed story response: %w", common.ErrUnavailable)
	}
	return out.Story, nil
}

func (c *HTTPClient) AddFavorite(ctx context.Context, token, username, storyID string) error {
	return c.do(ctx, http.MethodPost, favoritePath(username, storyID), token, nil, nil)
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, token, username, storyID string) error {
	return c.do(ctx, http.MethodDelete, favoritePath(username, storyID), token, nil, nil)
}

func favoritePath(username, storyID string) string {
	return "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(storyID)
}

// do performs a single JSON request. A transport failure maps to
// ErrUnavailable; a non-2xx status goes through mapStatus. When out is
// non-nil the response body is decoded into it.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeader, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug().Str("request_id", requestID).Str("method", method).Str("path", path).Err(err).Msg("request failed")
		return fmt.Errorf("%s %s: %w", method, path, common.ErrUnavailable)
	}
	defer resp.Body.Close()

	c.logger.Debug().Str("request_id", requestID).Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("request done")

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return mapStatus(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", common.ErrUnavailable)
	}
	return nil
}

// mapStatus converts a non-success HTTP response into one of the shared
// sentinel errors, keeping the server-reported message where present.
func mapStatus(resp *http.Response) error {
	var ep errorPayload
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&ep)
	msg := ep.Error
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s: %w", msg, common.ErrUnauthorized)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, common.ErrNotFound)
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %w", msg, common.ErrValidation)
	default:
		return fmt.Errorf("%s: %w", msg, common.ErrUnavailable)
	}
}

func userFrom(p userPayload) (*models.User, error) {
	if p.User == nil {
		return nil, fmt.Errorf("malformed user response: %w", common.ErrUnavailable)
	}
	u := p.User
	if p.Token != "" {
		u.LoginToken = p.Token
	}
	return u, nil
}
