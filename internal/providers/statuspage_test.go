package providers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/statusdeck/statusdeck/internal/config"
	"github.com/statusdeck/statusdeck/internal/providers"
	"github.com/statusdeck/statusdeck/internal/status"
)

func jsonServer(t *testing.T, statusCode int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func testService(name string, kind config.Kind, url, component string) config.Service {
	return config.Service{
		Name:          name,
		URL:           url,
		StatusURL:     "https://example.com/status",
		Type:          kind,
		ComponentName: component,
	}
}

func TestStatuspageCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		statusCode    int
		body          string
		wantIndicator string
		wantBucket    status.Bucket
	}{
		{
			name:          "operational",
			statusCode:    http.StatusOK,
			body:          `{"status":{"indicator":"none","description":"All Systems Operational"}}`,
			wantIndicator: "none",
			wantBucket:    status.Operational,
		},
		{
			name:          "major outage",
			statusCode:    http.StatusOK,
			body:          `{"status":{"indicator":"major_outage"}}`,
			wantIndicator: "major_outage",
			wantBucket:    status.Outage,
		},
		{
			name:          "missing status path",
			statusCode:    http.StatusOK,
			body:          `{}`,
			wantIndicator: "unknown",
			wantBucket:    status.Unknown,
		},
		{
			name:          "non-200 response",
			statusCode:    http.StatusServiceUnavailable,
			body:          `{"status":{"indicator":"none"}}`,
			wantIndicator: "error",
			wantBucket:    status.Outage,
		},
		{
			name:          "malformed body",
			statusCode:    http.StatusOK,
			body:          `{"status":`,
			wantIndicator: "error",
			wantBucket:    status.Outage,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := jsonServer(t, tt.statusCode, tt.body)
			p := providers.NewStatuspage(testService("svc", config.StatuspageJSON, server.URL, ""), time.Second)

			got := p.Check(context.Background())
			if got.Indicator != tt.wantIndicator {
				t.Errorf("Indicator = %q, want %q", got.Indicator, tt.wantIndicator)
			}
			if got.Bucket() != tt.wantBucket {
				t.Errorf("Bucket = %s, want %s", got.Bucket(), tt.wantBucket)
			}
			if got.Service != "svc" {
				t.Errorf("Service = %q, want svc", got.Service)
			}
			if got.StatusPageURL != "https://example.com/status" {
				t.Errorf("StatusPageURL = %q", got.StatusPageURL)
			}
		})
	}
}

func TestStatuspageConnectionFailure(t *testing.T) {
	t.Parallel()

	server := jsonServer(t, http.StatusOK, `{}`)
	url := server.URL
	server.Close()

	p := providers.NewStatuspage(testService("svc", config.StatuspageJSON, url, ""), time.Second)
	got := p.Check(context.Background())
	if got.Bucket() != status.Outage || got.Indicator != "error" {
		t.Errorf("got %q (%s), want error result", got.Indicator, got.Bucket())
	}
}

func TestStatuspageSendsUserAgent(t *testing.T) {
	t.Parallel()

	var ua string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		w.Write([]byte(`{"status":{"indicator":"none"}}`))
	}))
	t.Cleanup(server.Close)

	p := providers.NewStatuspage(testService("svc", config.StatuspageJSON, server.URL, ""), time.Second)
	p.Check(context.Background())
	if ua != providers.UserAgent {
		t.Errorf("User-Agent = %q, want %q", ua, providers.UserAgent)
	}
}

func TestDispatchUnknownKind(t *testing.T) {
	t.Parallel()

	p := providers.Dispatch(testService("svc", config.Kind("bogus"), "https://example.com", ""), time.Second)
	got := p.Check(context.Background())
	if got.Bucket() != status.Outage || got.Indicator != "error" {
		t.Errorf("got %q (%s), want error result", got.Indicator, got.Bucket())
	}
}
