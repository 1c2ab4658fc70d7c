package portal

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
)

// AttendanceAPI defines the subset of the portal used by the session
// controller and the background pollers. Implemented by *Client; fakes
// implement it in tests.
type AttendanceAPI interface {
	FetchSession(ctx context.Context) (SessionStatus, error)
	FetchAuthorizedBSSIDs(ctx context.Context) ([]string, error)
	PostAttendance(ctx context.Context, event AttendanceEvent) error
}

// Ensure Client implements AttendanceAPI at compile time.
var _ AttendanceAPI = (*Client)(nil)

// Client talks to the attendance service HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultServerURL = "127.0.0.1:8400"
	defaultUserAgent = "rollcall/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client for the given server URL or host:port value.
func NewClient(serverURL string) (*Client, error) {
	base, err := parseBaseURL(serverURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Login performs the single login exchange and reports the account type.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	if c == nil {
		return LoginResponse{}, fmt.Errorf("client is nil")
	}
	var payload LoginResponse
	body := LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/login", body, &payload); err != nil {
		return LoginResponse{}, err
	}
	return payload, nil
}

// FetchSession reports whether an attendance window is currently open.
func (c *Client) FetchSession(ctx context.Context) (SessionStatus, error) {
	if c == nil {
		return SessionStatus{}, fmt.Errorf("client is nil")
	}
	var payload SessionStatus
	if err := c.do(ctx, http.MethodGet, "/get_attendance_session", nil, &payload); err != nil {
		return SessionStatus{}, err
	}
	return payload, nil
}

// FetchAuthorizedBSSIDs retrieves the BSSID allow-list.
func (c *Client) FetchAuthorizedBSSIDs(ctx context.Context) ([]string, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload BSSIDList
	if err := c.do(ctx, http.MethodGet, "/get_authorized_bssids", nil, &payload); err != nil {
		return nil, err
	}
	return payload.BSSIDs, nil
}

// PostAttendance records a present/left event for the student.
func (c *Client) PostAttendance(ctx context.Context, event AttendanceEvent) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, "/update_attendance", event, nil)
}

// Ping sends the periodic liveness heartbeat.
func (c *Client) Ping(ctx context.Context, ping PingRequest) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, "/ping", ping, nil)
}

// PostWiFiStatus reports a connectivity change to the service.
func (c *Client) PostWiFiStatus(ctx context.Context, status WiFiStatusUpdate) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, "/update_wifi_status", status, nil)
}

// FetchRings checks for a random-ring alert aimed at the student.
func (c *Client) FetchRings(ctx context.Context, studentID string) (RingStatus, error) {
	if c == nil {
		return RingStatus{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("student_id", studentID)
	rel := &url.URL{Path: "/get_random_rings", RawQuery: values.Encode()}
	var payload RingStatus
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return RingStatus{}, err
	}
	return payload, nil
}

// FetchTimetable retrieves the weekly timetable.
func (c *Client) FetchTimetable(ctx context.Context) (Timetable, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Timetable
	if err := c.do(ctx, http.MethodGet, "/timetable", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchAttendanceSummary retrieves holidays and the attendance history
// for the given student.
func (c *Client) FetchAttendanceSummary(ctx context.Context, studentID string) (AttendanceSummary, error) {
	if c == nil {
		return AttendanceSummary{}, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/student_attendance/" + url.PathEscape(studentID)}
	var payload AttendanceSummary
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return AttendanceSummary{}, err
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, body, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &HTTPError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readErrorMessage pulls the service's {"error": ...} detail when present.
func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}

func parseBaseURL(serverURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(serverURL)
	if trimmed == "" {
		trimmed = defaultServerURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server url %q: %w", serverURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
