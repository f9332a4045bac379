package providers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/statusdeck/statusdeck/internal/config"
	"github.com/statusdeck/statusdeck/internal/logx"
	"github.com/statusdeck/statusdeck/internal/status"
)

// The GCP status dashboard has no per-product API, so this provider scrapes
// the HTML table. Product rows carry a generated header class and each row's
// status is an SVG icon whose class list and aria-label name the state. A row
// without any icon means no issue on the upstream page.
const (
	gcpProductHeaderSelector = "th.j2GwVIZkdLB__product"
	gcpStatusIconSelector    = "svg[class*='psd__status-icon']"
)

type GCPProvider struct {
	svc    config.Service
	client *http.Client
}

func NewGCP(svc config.Service, timeout time.Duration) *GCPProvider {
	return &GCPProvider{
		svc:    svc,
		client: NewHTTPClient(timeout),
	}
}

func (p *GCPProvider) Service() string       { return p.svc.Name }
func (p *GCPProvider) StatusPageURL() string { return p.svc.StatusURL }

func (p *GCPProvider) Check(ctx context.Context) status.Result {
	if p.svc.ComponentName == "" {
		return status.ErrorResult(p.svc.Name, p.svc.StatusURL)
	}
	logx.Debugf("gcp fetch service=%s component=%s", p.svc.Name, p.svc.ComponentName)
	req, err := newRequest(ctx, p.svc.URL)
	if err != nil {
		return status.ErrorResult(p.svc.Name, p.svc.StatusURL)
	}
	res, err := p.client.Do(req)
	if err != nil {
		logx.Debugf("gcp fetch failed service=%s: %v", p.svc.Name, err)
		return status.ErrorResult(p.svc.Name, p.svc.StatusURL)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		logx.Debugf("gcp unexpected status service=%s: %s", p.svc.Name, res.Status)
		return status.ErrorResult(p.svc.Name, p.svc.StatusURL)
	}
	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		logx.Debugf("gcp parse failed service=%s: %v", p.svc.Name, err)
		return status.ErrorResult(p.svc.Name, p.svc.StatusURL)
	}
	return p.parse(doc)
}

func (p *GCPProvider) parse(doc *goquery.Document) status.Result {
	needle := strings.ToLower(p.svc.ComponentName)
	indicator := ""
	doc.Find(gcpProductHeaderSelector).EachWithBreak(func(_ int, th *goquery.Selection) bool {
		product := strings.ToLower(strings.TrimSpace(th.Text()))
		if !strings.Contains(product, needle) {
			return true
		}
		// First matching product row wins.
		indicator = rowIndicator(th.Closest("tr"))
		return false
	})
	if indicator == "" {
		logx.Debugf("gcp component not found service=%s component=%s", p.svc.Name, p.svc.ComponentName)
		return status.UnknownResult(p.svc.Name, p.svc.StatusURL)
	}
	return status.Result{
		Service:       p.svc.Name,
		Indicator:     indicator,
		StatusPageURL: p.svc.StatusURL,
	}
}

func rowIndicator(row *goquery.Selection) string {
	if row.Length() == 0 {
		return "unknown"
	}
	icon := row.Find(gcpStatusIconSelector).First()
	if icon.Length() == 0 {
		// No icon in the row: the upstream page leaves the cell empty when
		// the product has no issue.
		return "operational"
	}
	class, _ := icon.Attr("class")
	label, _ := icon.Attr("aria-label")
	probe := strings.ToLower(class + " " + label)
	switch {
	case strings.Contains(probe, "available"):
		return "operational"
	case strings.Contains(probe, "degraded"):
		return "degraded_performance"
	case strings.Contains(probe, "outage"), strings.Contains(probe, "disruption"):
		return "major_outage"
	case strings.Contains(probe, "maintenance"):
		return "maintenance"
	default:
		return "unknown"
	}
}
