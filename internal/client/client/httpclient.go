package client

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

	"github.com/dmitrijs2005/nutritrack/internal/common"
	"github.com/dmitrijs2005/nutritrack/internal/models"
)

const maxResponseBytes = 1 << 20

// HTTPClient talks to the nutritrack server over JSON/HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client for the server at baseURL. A zero timeout
// leaves requests bounded only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *errorBody      `json:"error"`
}

// do sends one request and decodes the envelope's data into out (if not nil).
func (c *HTTPClient) do(ctx context.Context, method, path, accessToken string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if accessToken != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return networkError(err)
	}

	// A body that is not our envelope counts as a network failure: it came
	// from something other than the server (a proxy page, a cut-off read).
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return mapError(resp.StatusCode, nil)
		}
		return fmt.Errorf("%w: malformed response: %v", common.ErrNetwork, err)
	}

	if !env.Success || resp.StatusCode >= http.StatusBadRequest {
		return mapError(resp.StatusCode, env.Error)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: malformed response data: %v", common.ErrNetwork, err)
		}
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var res AuthResult
	in := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	var res AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Logout revokes the refresh token on the server. Either token may be empty.
func (c *HTTPClient) Logout(ctx context.Context, accessToken, refreshToken string) error {
	in := map[string]string{"refreshToken": refreshToken}
	return c.do(ctx, http.MethodPost, "/auth/logout", accessToken, in, nil)
}

func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var res TokenPair
	in := map[string]string{"refreshToken": refreshToken}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", "", in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Profile(ctx context.Context, accessToken string) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/profile", accessToken, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) Meals(ctx context.Context, accessToken, date string) ([]models.MealLog, error) {
	list := []models.MealLog{}
	if err := c.do(ctx, http.MethodGet, "/meals"+dateQuery(date), accessToken, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) AddMeal(ctx context.Context, accessToken string, meal models.MealLog) (*models.MealLog, error) {
	var created models.MealLog
	if err := c.do(ctx, http.MethodPost, "/meals", accessToken, meal, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) Workouts(ctx context.Context, accessToken, date string) ([]models.WorkoutLog, error) {
	list := []models.WorkoutLog{}
	if err := c.do(ctx, http.MethodGet, "/workouts"+dateQuery(date), accessToken, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) AddWorkout(ctx context.Context, accessToken string, workout models.WorkoutLog) (*models.WorkoutLog, error) {
	var created models.WorkoutLog
	if err := c.do(ctx, http.MethodPost, "/workouts", accessToken, workout, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/ping", "", nil, nil)
}

func dateQuery(date string) string {
	if date == "" {
		return ""
	}
	return "?" + url.Values{"date": {date}}.Encode()
}
