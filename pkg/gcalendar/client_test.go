package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"task-scheduling-advisor/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCalendarCredentials(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.json")

	t.Run("broken config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), tokenPath)
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), filepath.Join(dir, "missing.json"))
		if err == nil {
			t.Errorf("expected missing token error")
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)
		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("installed app bad token", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		os.WriteFile(bad, []byte(`{"broken": true`), 0o600)
		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), bad); err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("from file", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(dir, "nope.json"), tokenPath); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/work/events" && r.Method == http.MethodPost {
			json.NewDecoder(r.Body).Decode(&got)
			w.Write([]byte(`{"id": "event-123", "summary": "Write report", "htmlLink": "https://calendar.google.com/event-uri"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	})

	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		CalendarID: "work",
		TaskID:     "t1",
		Summary:    "Write report",
		StartTime:  start,
		EndTime:    start.Add(30 * time.Minute),
		Timezone:   "UTC",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.ID != "event-123" || event.TaskID != "t1" || event.HtmlLink == "" {
		t.Errorf("unexpected event: %+v", event)
	}

	props, _ := got["extendedProperties"].(map[string]any)
	private, _ := props["private"].(map[string]any)
	if private["scheduledTaskId"] != "t1" {
		t.Errorf("task id not stored on event: %+v", got["extendedProperties"])
	}

	if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "defaults to primary",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}); err == nil {
		t.Errorf("expected api error for primary calendar")
	}
}

func TestCreateEventRejectsEmptyWindow(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected")
	})

	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{StartTime: start, EndTime: start}); err == nil {
		t.Errorf("expected validation error")
	}
}
