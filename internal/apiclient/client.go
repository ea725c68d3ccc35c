package apiclient

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

	"github.com/Jaychaware/hrms-lite/internal"
	"github.com/Jaychaware/hrms-lite/internal/attendance"
	"github.com/Jaychaware/hrms-lite/internal/employee"
	"golang.org/x/sync/errgroup"
)

// Fallback messages shown when the server gives no usable detail.
const (
	MsgLoadEmployees  = "Error loading employees"
	MsgAddEmployee    = "Error adding employee"
	MsgDeleteEmployee = "Error deleting employee"
	MsgLoadAttendance = "Error loading records"
	MsgMarkAttendance = "Error marking attendance"
	MsgLoadDashboard  = "Error loading dashboard"
	MsgLoadSummary    = "Error loading summary"
)

const (
	defaultTimeout    = 10 * time.Second
	maxErrorBodyBytes = 64 << 10
)

// APIError is a failed call. Message is the server's detail when it sent
// one, else the caller's fallback.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger

	Employees  *EmployeesService
	Attendance *AttendanceService
}

func NewClient(config Config, logger *slog.Logger) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if baseURL == "" {
		baseURL = internal.DefaultAPIURL
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
	c.Employees = &EmployeesService{client: c}
	c.Attendance = &AttendanceService{client: c}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Snapshot is everything the dashboard and summary views need.
type Snapshot struct {
	Employees  []*employee.Employee
	Attendance []*attendance.Record
}

// Snapshot fetches employees and attendance concurrently.
func (c *Client) Snapshot(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Employees, err = c.Employees.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Attendance, err = c.Attendance.List(gctx, attendance.FilterQuery{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, fallback string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: fallback, Err: fmt.Errorf("marshal request: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &APIError{Message: fallback, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("api request failed", "method", method, "path", path, "error", err)
		return &APIError{Message: fallback, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: fallback}
		if detail := errorDetail(resp.Body); detail != "" {
			apiErr.Message = detail
		}
		c.logger.Warn("api request rejected",
			"method", method,
			"path", path,
			"status_code", resp.StatusCode,
			"message", apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("api response decode failed", "method", method, "path", path, "error", err)
		return &APIError{StatusCode: resp.StatusCode, Message: fallback, Err: err}
	}
	return nil
}

// errorDetail extracts the human message from an error body: the top level
// "detail" string first, then "error.message".
func errorDetail(r io.Reader) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
		Error  *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(r, maxErrorBodyBytes)).Decode(&body); err != nil {
		return ""
	}
	var detail string
	if len(body.Detail) > 0 && json.Unmarshal(body.Detail, &detail) == nil && detail != "" {
		return detail
	}
	if body.Error != nil {
		return body.Error.Message
	}
	return ""
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func escape(id string) string {
	return url.PathEscape(id)
}
