// Package api is the HTTP client for the TeyvatDex backend. It mirrors the
// server's REST surface and translates status codes back into the shared
// error taxonomy, so callers handle one set of sentinel errors on both
// sides of the wire.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/teyvatdex/teyvatdex/internal/common"
	"github.com/teyvatdex/teyvatdex/internal/server/models"
)

// User is the outward user shape returned by the auth endpoints.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthPayload is the response of register and login.
type AuthPayload struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// Client is the remote API surface the client services need.
type Client interface {
	Register(ctx context.Context, username, email, password string) (*AuthPayload, error)
	Login(ctx context.Context, email, password string) (*AuthPayload, error)
	Me(ctx context.Context, token string) (*User, error)

	Characters(ctx context.Context) ([]*models.Character, error)
	Character(ctx context.Context, id int64) (*models.Character, error)
	PortraitURL(ctx context.Context, id int64) (string, error)

	AddFavorite(ctx context.Context, token string, characterID int64) error
	RemoveFavorite(ctx context.Context, token string, characterID int64) error
	Favorites(ctx context.Context, token string) ([]int64, error)
	CheckFavorite(ctx context.Context, token string, characterID int64) (bool, error)

	Ping(ctx context.Context) error
}

// HTTPClient is the concrete Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient constructs a Client for the given base URL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type messageBody struct {
	Message string `json:"message"`
}

// do performs one request and decodes a successful JSON body into out.
// Transport failures become ErrUnavailable; error statuses map back to the
// common sentinel errors the server encoded them from.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body any, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var msg messageBody
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		return statusError(resp.StatusCode, msg.Message)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}
	return nil
}

func statusError(status int, message string) error {
	var sentinel error
	switch status {
	case http.StatusBadRequest:
		sentinel = common.ErrValidation
	case http.StatusUnauthorized:
		sentinel = common.ErrUnauthorized
	case http.StatusNotFound:
		sentinel = common.ErrNotFound
	default:
		sentinel = common.ErrInternal
	}
	if message == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, message)
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*AuthPayload, error) {
	var out AuthPayload
	body := map[string]string{"username": username, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	var out AuthPayload
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Me(ctx context.Context, token string) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *HTTPClient) Characters(ctx context.Context) ([]*models.Character, error) {
	var out []*models.Character
	if err := c.do(ctx, http.MethodGet, "/characters", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Character(ctx context.Context, id int64) (*models.Character, error) {
	var out models.Character
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/characters/%d", id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) PortraitURL(ctx context.Context, id int64) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/characters/%d/portrait", id), "", nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

func (c *HTTPClient) AddFavorite(ctx context.Context, token string, characterID int64) error {
	body := map[string]int64{"characterId": characterID}
	return c.do(ctx, http.MethodPost, "/favorites", token, body, nil)
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, token string, characterID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/favorites/%d", characterID), token, nil, nil)
}

func (c *HTTPClient) Favorites(ctx context.Context, token string) ([]int64, error) {
	var out struct {
		Favorites []int64 `json:"favorites"`
	}
	if err := c.do(ctx, http.MethodGet, "/favorites", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Favorites, nil
}

func (c *HTTPClient) CheckFavorite(ctx context.Context, token string, characterID int64) (bool, error) {
	var out struct {
		IsFavorite bool `json:"isFavorite"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/favorites/%d", characterID), token, nil, &out); err != nil {
		return false, err
	}
	return out.IsFavorite, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "", nil, nil)
}
