package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moviehub/pkg/utils"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const testKey = "s3cr3t-api-key"

func newTestClient(t *testing.T, base, key string) (HTTPIface, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	c, err := InitClient(utils.TMDBConfig{APIKey: key, BaseURL: base}, zap.New(core))
	if err != nil {
		t.Fatalf("InitClient: %v", err)
	}
	return c, logs
}

func assertNoSecret(t *testing.T, logs *observer.ObservedLogs) {
	t.Helper()
	for _, entry := range logs.All() {
		if strings.Contains(entry.Message, testKey) {
			t.Fatalf("credential leaked into log message: %q", entry.Message)
		}
		for k, v := range entry.ContextMap() {
			if strings.Contains(fmt.Sprint(v), testKey) {
				t.Fatalf("credential leaked into log field %s", k)
			}
		}
	}
}

func TestClientGet_AttachesCredentialAndQuery(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path != "/search/movie" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("api_key"); got != testKey {
			t.Errorf("api_key = %q", got)
		}
		if got := r.URL.Query().Get("query"); got != "the batman" {
			t.Errorf("query = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":1,"results":[]}`))
	}))
	defer srv.Close()

	c, logs := newTestClient(t, srv.URL, testKey)
	body, err := c.Get(context.Background(), "search", "/search/movie", map[string][]string{"query": {"the batman"}})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(body) != `{"page":1,"results":[]}` {
		t.Fatalf("body = %s", body)
	}
	if hits != 1 {
		t.Fatalf("expected exactly one request, got %d", hits)
	}
	assertNoSecret(t, logs)
}

func TestClientGet_NonSuccessIsRemoteError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"status_code":7,"status_message":"Invalid API key: You must be granted a valid key.","success":false}`, "Invalid API key: You must be granted a valid key."},
		{"not found", http.StatusNotFound, `{"status_code":34,"status_message":"The resource you requested could not be found."}`, "The resource you requested could not be found."},
		{"plain body", http.StatusServiceUnavailable, `upstream down`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits int
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits++
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, logs := newTestClient(t, srv.URL, testKey)
			_, err := c.Get(context.Background(), "movie_detail", "/movie/1", nil)

			var re *RemoteError
			if !errors.As(err, &re) {
				t.Fatalf("expected *RemoteError, got %T (%v)", err, err)
			}
			if re.Status != tt.status {
				t.Fatalf("status = %d, want %d", re.Status, tt.status)
			}
			if re.Message != tt.message {
				t.Fatalf("message = %q, want %q", re.Message, tt.message)
			}
			if hits != 1 {
				t.Fatalf("expected no retries, got %d requests", hits)
			}
			if strings.Contains(err.Error(), testKey) {
				t.Fatalf("credential leaked into error: %v", err)
			}
			assertNoSecret(t, logs)
		})
	}
}

func TestClientGet_TransportErrorHidesCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c, logs := newTestClient(t, base, testKey)
	_, err := c.Get(context.Background(), "popular", "/movie/popular", nil)

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TransportError, got %T (%v)", err, err)
	}
	if strings.Contains(err.Error(), testKey) {
		t.Fatalf("credential leaked into error: %v", err)
	}
	assertNoSecret(t, logs)
}

func TestClientGet_MissingCredentialSurfacesRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("api_key") {
			t.Errorf("api_key must not be sent when unset")
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_message":"Invalid API key"}`))
	}))
	defer srv.Close()

	c, logs := newTestClient(t, srv.URL, "")
	_, err := c.Get(context.Background(), "popular", "/movie/popular", nil)

	var re *RemoteError
	if !errors.As(err, &re) || re.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 RemoteError, got %v", err)
	}
	if logs.FilterMessage("Catalog API credential is not configured").Len() != 1 {
		t.Fatalf("expected a warning about the missing credential")
	}
}

func TestInitClient_RejectsBadBaseURL(t *testing.T) {
	for _, base := range []string{"", "   ", "::not a url"} {
		if _, err := InitClient(utils.TMDBConfig{BaseURL: base}, zap.NewNop()); err == nil {
			t.Fatalf("expected error for base %q", base)
		}
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(fmt.Errorf("fetch detail: %w", &RemoteError{Status: http.StatusNotFound})) {
		t.Fatalf("wrapped 404 should be recognised")
	}
	if IsNotFound(&RemoteError{Status: http.StatusUnauthorized}) {
		t.Fatalf("401 is not a not-found")
	}
	if IsNotFound(&TransportError{Err: errors.New("dial")}) {
		t.Fatalf("transport error is not a not-found")
	}
}
