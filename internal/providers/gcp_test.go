package providers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/statusdeck/statusdeck/internal/config"
	"github.com/statusdeck/statusdeck/internal/providers"
	"github.com/statusdeck/statusdeck/internal/status"
)

func gcpPage(productRows string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html><body>
<table>
  <tbody>
%s
  </tbody>
</table>
</body></html>`, productRows)
}

func gcpRow(product, icon string) string {
	return fmt.Sprintf(`<tr><th class="j2GwVIZkdLB__product">%s</th><td>%s</td></tr>`, product, icon)
}

func htmlServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGCPCheck(t *testing.T) {
	t.Parallel()

	availableIcon := `<svg class="psd__status-icon psd__available" aria-label="Available status"></svg>`
	degradedIcon := `<svg class="psd__status-icon psd__degraded" aria-label="Degraded status"></svg>`
	outageIcon := `<svg class="psd__status-icon" aria-label="Service disruption"></svg>`
	maintenanceIcon := `<svg class="psd__status-icon psd__maintenance" aria-label=""></svg>`
	mysteryIcon := `<svg class="psd__status-icon psd__something" aria-label="???"></svg>`

	tests := []struct {
		name          string
		component     string
		body          string
		wantIndicator string
		wantBucket    status.Bucket
	}{
		{
			name:          "available icon",
			component:     "Gemini Code Assist",
			body:          gcpPage(gcpRow("Gemini Code Assist", availableIcon)),
			wantIndicator: "operational",
			wantBucket:    status.Operational,
		},
		{
			name:          "degraded icon",
			component:     "Gemini Code Assist",
			body:          gcpPage(gcpRow("Gemini Code Assist", degradedIcon)),
			wantIndicator: "degraded_performance",
			wantBucket:    status.Degraded,
		},
		{
			name:          "disruption in aria-label only",
			component:     "Gemini Code Assist",
			body:          gcpPage(gcpRow("Gemini Code Assist", outageIcon)),
			wantIndicator: "major_outage",
			wantBucket:    status.Outage,
		},
		{
			name:          "maintenance icon",
			component:     "Gemini Code Assist",
			body:          gcpPage(gcpRow("Gemini Code Assist", maintenanceIcon)),
			wantIndicator: "maintenance",
			wantBucket:    status.Maintenance,
		},
		{
			name:          "icon with unrecognized state",
			component:     "Gemini Code Assist",
			body:          gcpPage(gcpRow("Gemini Code Assist", mysteryIcon)),
			wantIndicator: "unknown",
			wantBucket:    status.Unknown,
		},
		{
			name:          "empty status cell means no issue",
			component:     "Gemini Code Assist",
			body:          gcpPage(gcpRow("Gemini Code Assist", "")),
			wantIndicator: "operational",
			wantBucket:    status.Operational,
		},
		{
			name:          "case-insensitive substring match",
			component:     "gemini",
			body:          gcpPage(gcpRow("Vertex Gemini API", availableIcon)),
			wantIndicator: "operational",
			wantBucket:    status.Operational,
		},
		{
			name:      "first matching row wins",
			component: "Gemini",
			body: gcpPage(
				gcpRow("Gemini Code Assist", degradedIcon) +
					gcpRow("Vertex Gemini API", availableIcon)),
			wantIndicator: "degraded_performance",
			wantBucket:    status.Degraded,
		},
		{
			name:          "component not on the page",
			component:     "Gemini Code Assist",
			body:          gcpPage(gcpRow("Compute Engine", availableIcon)),
			wantIndicator: "unknown",
			wantBucket:    status.Unknown,
		},
		{
			name:          "page without product table",
			component:     "Gemini Code Assist",
			body:          `<html><body><p>maintenance page</p></body></html>`,
			wantIndicator: "unknown",
			wantBucket:    status.Unknown,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := htmlServer(t, tt.body)
			p := providers.NewGCP(testService("svc", config.GcpHTML, server.URL, tt.component), time.Second)

			got := p.Check(context.Background())
			if got.Indicator != tt.wantIndicator {
				t.Errorf("Indicator = %q, want %q", got.Indicator, tt.wantIndicator)
			}
			if got.Bucket() != tt.wantBucket {
				t.Errorf("Bucket = %s, want %s", got.Bucket(), tt.wantBucket)
			}
		})
	}
}

func TestGCPMissingComponentName(t *testing.T) {
	t.Parallel()

	server := htmlServer(t, gcpPage(""))
	p := providers.NewGCP(testService("svc", config.GcpHTML, server.URL, ""), time.Second)

	got := p.Check(context.Background())
	if got.Bucket() != status.Outage || got.Indicator != "error" {
		t.Errorf("got %q (%s), want error result", got.Indicator, got.Bucket())
	}
}

func TestGCPNon200(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	p := providers.NewGCP(testService("svc", config.GcpHTML, server.URL, "Gemini"), time.Second)
	got := p.Check(context.Background())
	if got.Bucket() != status.Outage || got.Indicator != "error" {
		t.Errorf("got %q (%s), want error result", got.Indicator, got.Bucket())
	}
}
