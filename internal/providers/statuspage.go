package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/statusdeck/statusdeck/internal/config"
	"github.com/statusdeck/statusdeck/internal/logx"
	"github.com/statusdeck/statusdeck/internal/status"
)

// StatuspageProvider reads the standard Atlassian Statuspage status endpoint
// and reports the page-wide indicator.
type StatuspageProvider struct {
	svc    config.Service
	client *http.Client
}

func NewStatuspage(svc config.Service, timeout time.Duration) *StatuspageProvider {
	return &StatuspageProvider{
		svc:    svc,
		client: NewHTTPClient(timeout),
	}
}

func (p *StatuspageProvider) Service() string       { return p.svc.Name }
func (p *StatuspageProvider) StatusPageURL() string { return p.svc.StatusURL }

type spStatus struct {
	Status struct {
		Indicator string `json:"indicator"`
	} `json:"status"`
}

func (p *StatuspageProvider) Check(ctx context.Context) status.Result {
	logx.Debugf("statuspage fetch service=%s url=%s", p.svc.Name, p.svc.URL)
	req, err := newRequest(ctx, p.svc.URL)
	if err != nil {
		return status.ErrorResult(p.svc.Name, p.svc.StatusURL)
	}
	res, err := p.client.Do(req)
	if err != nil {
		logx.Debugf("statuspage fetch failed service=%s: %v", p.svc.Name, err)
		return status.ErrorResult(p.svc.Name, p.svc.StatusURL)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		logx.Debugf("statuspage unexpected status service=%s: %s", p.svc.Name, res.Status)
		return status.ErrorResult(p.svc.Name, p.svc.StatusURL)
	}
	var s spStatus
	if err := json.NewDecoder(res.Body).Decode(&s); err != nil {
		logx.Debugf("statuspage decode failed service=%s: %v", p.svc.Name, err)
		return status.ErrorResult(p.svc.Name, p.svc.StatusURL)
	}
	if s.Status.Indicator == "" {
		return status.UnknownResult(p.svc.Name, p.svc.StatusURL)
	}
	return status.Result{
		Service:       p.svc.Name,
		Indicator:     s.Status.Indicator,
		StatusPageURL: p.svc.StatusURL,
	}
}
