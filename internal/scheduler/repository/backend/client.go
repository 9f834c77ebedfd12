package backend

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
	"golang.org/x/time/rate"

	"task-scheduling-advisor/internal/scheduler/repository"
)

// idempotencyNamespace scopes the deterministic idempotency keys sent with schedule updates.
var idempotencyNamespace = uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8") // URL namespace

// ClientConfig configures the backend HTTP client.
type ClientConfig struct {
	BaseURL         string
	AccessToken     string
	Timeout         time.Duration
	RateLimitPerSec float64 // <= 0 disables outbound throttling
	Burst           int
	HTTPClient      *http.Client // optional, mainly for tests
}

// Client is the HTTP wrapper for the task backend REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewClient creates a new backend HTTP client.
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	limit := rate.Inf
	if cfg.RateLimitPerSec > 0 {
		limit = rate.Limit(cfg.RateLimitPerSec)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		httpClient:  httpClient,
		limiter:     rate.NewLimiter(limit, burst),
	}
}

// StatusError is returned for non-2xx backend responses.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend API %s error %d: %s", e.Op, e.StatusCode, e.Body)
}

// GetRecommendations fetches the raw payload via GET /scheduler/recommendations/{taskId}.
// Numbers are kept as json.Number. A JSON null yields a nil payload; any other
// non-object body is repository.ErrMalformedPayload.
func (c *Client) GetRecommendations(ctx context.Context, taskID string) (map[string]any, error) {
	endpoint := fmt.Sprintf("%s/scheduler/recommendations/%s", c.baseURL, url.PathEscape(taskID))

	resp, err := c.do(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call recommendations API: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus("recommendations", resp); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations response: %w", err)
	}

	switch payload := body.(type) {
	case map[string]any:
		return payload, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: got %T", repository.ErrMalformedPayload, body)
	}
}

// ScheduleTask sets the task's scheduled time via PATCH /scheduler/schedule/{taskId}.
// Repeating the same update sends the same Idempotency-Key.
func (c *Client) ScheduleTask(ctx context.Context, taskID string, req ScheduleRequest) (*Task, error) {
	endpoint := fmt.Sprintf("%s/scheduler/schedule/%s", c.baseURL, url.PathEscape(taskID))

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schedule request: %w", err)
	}

	headers := map[string]string{
		"Content-Type":    "application/json",
		"Idempotency-Key": IdempotencyKey(taskID, req.ScheduledTime),
	}
	resp, err := c.do(ctx, http.MethodPatch, endpoint, bytes.NewReader(body), headers)
	if err != nil {
		return nil, fmt.Errorf("failed to call schedule API: %w", err)
	}
	defer resp.Body.Close()

	return decodeTask("schedule", resp)
}

// StartTask marks the task as in progress via PATCH /scheduler/start-task/{taskId}.
func (c *Client) StartTask(ctx context.Context, taskID string) (*Task, error) {
	endpoint := fmt.Sprintf("%s/scheduler/start-task/%s", c.baseURL, url.PathEscape(taskID))

	resp, err := c.do(ctx, http.MethodPatch, endpoint, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call start-task API: %w", err)
	}
	defer resp.Body.Close()

	return decodeTask("start-task", resp)
}

// GetTask fetches a single task via GET /todos/{taskId}.
func (c *Client) GetTask(ctx context.Context, taskID string) (*Task, error) {
	endpoint := fmt.Sprintf("%s/todos/%s", c.baseURL, url.PathEscape(taskID))

	resp, err := c.do(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call get task API: %w", err)
	}
	defer resp.Body.Close()

	return decodeTask("get task", resp)
}

// Ping reports whether the backend answers at all. Any status below 500 counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodHead, c.baseURL, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to reach backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return &StatusError{Op: "ping", StatusCode: resp.StatusCode}
	}
	return nil
}

// IdempotencyKey derives a stable key for a schedule update.
func IdempotencyKey(taskID, scheduledTime string) string {
	return uuid.NewSHA1(idempotencyNamespace, []byte(taskID+"|"+scheduledTime)).String()
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, headers map[string]string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
	}
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	return c.httpClient.Do(httpReq)
}

func checkStatus(op string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
}

func decodeTask(op string, resp *http.Response) (*Task, error) {
	if err := checkStatus(op, resp); err != nil {
		return nil, err
	}

	var task Task
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", op, err)
	}
	return &task, nil
}

// ---- Request/Response types scoped to this package ----

// ScheduleRequest is the body for PATCH /scheduler/schedule/{taskId}.
type ScheduleRequest struct {
	ScheduledTime string `json:"scheduledTime"` // ISO-8601
}

// Task is the backend task object. Either id or _id identifies it.
type Task struct {
	ID                string  `json:"id,omitempty"`
	MongoID           string  `json:"_id,omitempty"`
	Title             string  `json:"title"`
	Status            string  `json:"status"`
	DueDate           *string `json:"dueDate"`
	ScheduledTime     *string `json:"scheduledTime"`
	EstimatedDuration int     `json:"estimatedDuration"`
	OptimalTimeOfDay  string  `json:"optimalTimeOfDay"`
	TaskType          string  `json:"taskType"`
}

// Identity returns whichever identifier the backend sent.
func (t Task) Identity() string {
	if t.ID != "" {
		return t.ID
	}
	return t.MongoID
}
