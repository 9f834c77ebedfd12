package gcalendar_test

import (
	"context"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"task-scheduling-advisor/pkg/gcalendar"
)

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"],
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token"
	}
}`

func TestAuthorizer(t *testing.T) {
	if _, err := gcalendar.NewAuthorizer([]byte(`{"broken":true}`)); err == nil {
		t.Errorf("expected error for unknown credentials")
	}

	a, err := gcalendar.NewAuthorizer([]byte(installedCreds))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := url.Parse(a.AuthCodeURL("state-token"))
	if err != nil {
		t.Fatalf("bad auth url: %v", err)
	}
	q := u.Query()
	if q.Get("client_id") != "test-client-id.apps.googleusercontent.com" || q.Get("access_type") != "offline" || q.Get("state") != "state-token" {
		t.Errorf("unexpected auth url query %v", q)
	}
}

func TestSaveTokenRoundTripsIntoClient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	tok := &oauth2.Token{AccessToken: "dummy", TokenType: "Bearer", Expiry: time.Now().Add(time.Hour)}

	if err := gcalendar.SaveToken(path, tok); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installedCreds), path); err != nil {
		t.Errorf("saved token should be usable: %v", err)
	}
	if err := gcalendar.SaveToken(filepath.Join(t.TempDir(), "missing", "token.json"), tok); err == nil {
		t.Errorf("expected error for missing directory")
	}
}
