package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claude/fit365/internal/models"
	"github.com/claude/fit365/internal/storage"
)

// HTTPClient implements DataSource by calling the Fit365 REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, storage.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func dateParams(start, end string) url.Values {
	v := url.Values{}
	v.Set("start", start)
	v.Set("end", end)
	return v
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	body, err := c.get(ctx, "/api/v1/profile", nil)
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("httpclient: decode profile: %w", err)
	}
	return &profile, nil
}

func (c *HTTPClient) GetSelectedPlan(ctx context.Context) (*models.SelectedPlan, error) {
	body, err := c.get(ctx, "/api/v1/plan", nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Selected models.SelectedPlan `json:"selected"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("httpclient: decode selected plan: %w", err)
	}
	return &resp.Selected, nil
}

func (c *HTTPClient) GetDailyProgress(ctx context.Context, date string) (*models.DailyProgress, error) {
	body, err := c.get(ctx, "/api/v1/progress/"+date, nil)
	if errors.Is(err, storage.ErrNotFound) {
		// Missing days are reported as nil, not an error
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p models.DailyProgress
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("httpclient: decode daily progress: %w", err)
	}
	return &p, nil
}

func (c *HTTPClient) QueryDailyProgress(ctx context.Context, start, end string) ([]models.DailyProgress, error) {
	body, err := c.get(ctx, "/api/v1/progress", dateParams(start, end))
	if err != nil {
		return nil, err
	}

	var rows []models.DailyProgress
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("httpclient: decode progress: %w", err)
	}
	return rows, nil
}

func (c *HTTPClient) GetHistory(ctx context.Context) (models.WorkoutHistory, error) {
	body, err := c.get(ctx, "/api/v1/history", nil)
	if err != nil {
		return models.WorkoutHistory{}, err
	}

	var history models.WorkoutHistory
	if err := json.Unmarshal(body, &history); err != nil {
		return models.WorkoutHistory{}, fmt.Errorf("httpclient: decode history: %w", err)
	}
	return history, nil
}

func (c *HTTPClient) QueryBodyMetrics(ctx context.Context, start, end string) ([]models.BodyMetric, error) {
	body, err := c.get(ctx, "/api/v1/metrics", dateParams(start, end))
	if err != nil {
		return nil, err
	}

	var rows []models.BodyMetric
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("httpclient: decode body metrics: %w", err)
	}
	return rows, nil
}

func (c *HTTPClient) ListTodos(ctx context.Context) ([]models.TodoItem, error) {
	body, err := c.get(ctx, "/api/v1/todos", nil)
	if err != nil {
		return nil, err
	}

	var items []models.TodoItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("httpclient: decode todos: %w", err)
	}
	return items, nil
}
