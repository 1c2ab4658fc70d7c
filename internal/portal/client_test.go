package portal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultServerURL {
		t.Fatalf("host = %q, want %q", u.Host, defaultServerURL)
	}

	u, err = parseBaseURL("https://attendance.example.edu/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchesEndpoints(t *testing.T) {
	t.Parallel()

	var gotUserAgent string
	var gotRingQuery string
	var gotLogin LoginRequest
	var gotEvent AttendanceEvent

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/login":
			_ = json.NewDecoder(r.Body).Decode(&gotLogin)
			_ = json.NewEncoder(w).Encode(LoginResponse{Type: "student"})
		case "/get_attendance_session":
			_ = json.NewEncoder(w).Encode(SessionStatus{Active: true})
		case "/get_authorized_bssids":
			_ = json.NewEncoder(w).Encode(BSSIDList{BSSIDs: []string{"a4:56:02:9c:11:fe"}})
		case "/update_attendance":
			_ = json.NewDecoder(r.Body).Decode(&gotEvent)
			w.WriteHeader(http.StatusOK)
		case "/get_random_rings":
			gotRingQuery = r.URL.Query().Get("student_id")
			_ = json.NewEncoder(w).Encode(RingStatus{RingActive: true, LastRing: "ring-7"})
		case "/timetable":
			_ = json.NewEncoder(w).Encode(Timetable{"Monday": {"09:40-10:40 AM": "Maths"}})
		case "/student_attendance/s123":
			_ = json.NewEncoder(w).Encode(AttendanceSummary{
				History: []AttendanceRecord{{Date: "2025-03-14", Status: "present"}},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	login, err := c.Login(ctx, "s123", "hunter2")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if !login.IsStudent() {
		t.Fatalf("Login type = %q, want student", login.Type)
	}
	if gotLogin.Username != "s123" || gotLogin.Password != "hunter2" {
		t.Fatalf("login payload = %+v", gotLogin)
	}

	status, err := c.FetchSession(ctx)
	if err != nil {
		t.Fatalf("FetchSession returned error: %v", err)
	}
	if !status.Active {
		t.Fatalf("FetchSession = %+v, want active", status)
	}

	bssids, err := c.FetchAuthorizedBSSIDs(ctx)
	if err != nil {
		t.Fatalf("FetchAuthorizedBSSIDs returned error: %v", err)
	}
	if len(bssids) != 1 || bssids[0] != "a4:56:02:9c:11:fe" {
		t.Fatalf("bssids = %v", bssids)
	}

	at := time.Date(2025, 3, 14, 9, 40, 5, 0, time.UTC)
	if err := c.PostAttendance(ctx, PresentEvent("s123", "dev-1", "a4:56:02:9c:11:fe", at)); err != nil {
		t.Fatalf("PostAttendance returned error: %v", err)
	}
	if gotEvent.Status != StatusPresent || gotEvent.TimeIn != "09:40:05" || gotEvent.TimeOut != "" {
		t.Fatalf("attendance payload = %+v", gotEvent)
	}

	ring, err := c.FetchRings(ctx, "s123")
	if err != nil {
		t.Fatalf("FetchRings returned error: %v", err)
	}
	if !ring.RingActive || ring.LastRing != "ring-7" {
		t.Fatalf("ring = %+v", ring)
	}
	if gotRingQuery != "s123" {
		t.Fatalf("ring query student_id = %q", gotRingQuery)
	}

	timetable, err := c.FetchTimetable(ctx)
	if err != nil {
		t.Fatalf("FetchTimetable returned error: %v", err)
	}
	if timetable.Subject("Monday", "09:40-10:40 AM") != "Maths" {
		t.Fatalf("timetable = %v", timetable)
	}

	summary, err := c.FetchAttendanceSummary(ctx, "s123")
	if err != nil {
		t.Fatalf("FetchAttendanceSummary returned error: %v", err)
	}
	if len(summary.History) != 1 || summary.History[0].Status != "present" {
		t.Fatalf("summary = %+v", summary)
	}

	if gotUserAgent != defaultUserAgent {
		t.Fatalf("user agent = %q, want %q", gotUserAgent, defaultUserAgent)
	}
}

func TestClient_ErrorMapping(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": "Invalid credentials"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Login(context.Background(), "s123", "wrong")
	if err == nil {
		t.Fatal("Login succeeded on 401")
	}
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("IsStatus(401) = false for %v", err)
	}
	if IsStatus(err, http.StatusNotFound) {
		t.Fatalf("IsStatus(404) = true for %v", err)
	}
	httpErr := err.(*HTTPError)
	if httpErr.Message != "Invalid credentials" {
		t.Fatalf("message = %q", httpErr.Message)
	}
}

func TestClient_TransportFailureIsNotHTTPError(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err = c.FetchSession(ctx)
	if err == nil {
		t.Fatal("FetchSession succeeded against closed port")
	}
	if IsStatus(err, http.StatusInternalServerError) {
		t.Fatalf("transport failure mapped to HTTPError: %v", err)
	}
}
