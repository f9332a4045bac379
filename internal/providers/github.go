package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/statusdeck/statusdeck/internal/config"
	"github.com/statusdeck/statusdeck/internal/logx"
	"github.com/statusdeck/statusdeck/internal/status"
)

// GithubProvider reads GitHub's status summary and reports the status of one
// named component. The component is matched by case-insensitive substring, so
// "Copilot" matches a component named "Copilot Chat" as well; the first match
// in page order wins.
type GithubProvider struct {
	svc    config.Service
	client *http.Client
}

func NewGithub(svc config.Service, timeout time.Duration) *GithubProvider {
	return &GithubProvider{
		svc:    svc,
		client: NewHTTPClient(timeout),
	}
}

func (p *GithubProvider) Service() string       { return p.svc.Name }
func (p *GithubProvider) StatusPageURL() string { return p.svc.StatusURL }

type ghSummary struct {
	Components []ghComponent `json:"components"`
}

type ghComponent struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

func (p *GithubProvider) Check(ctx context.Context) status.Result {
	if p.svc.ComponentName == "" {
		return status.ErrorResult(p.svc.Name, p.svc.StatusURL)
	}
	logx.Debugf("github fetch service=%s component=%s", p.svc.Name, p.svc.ComponentName)
	req, err := newRequest(ctx, p.svc.URL)
	if err != nil {
		return status.ErrorResult(p.svc.Name, p.svc.StatusURL)
	}
	res, err := p.client.Do(req)
	if err != nil {
		logx.Debugf("github fetch failed service=%s: %v", p.svc.Name, err)
		return status.ErrorResult(p.svc.Name, p.svc.StatusURL)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		logx.Debugf("github unexpected status service=%s: %s", p.svc.Name, res.Status)
		return status.ErrorResult(p.svc.Name, p.svc.StatusURL)
	}
	var s ghSummary
	if err := json.NewDecoder(res.Body).Decode(&s); err != nil {
		logx.Debugf("github decode failed service=%s: %v", p.svc.Name, err)
		return status.ErrorResult(p.svc.Name, p.svc.StatusURL)
	}
	indicator, ok := matchComponent(s.Components, p.svc.ComponentName)
	if !ok {
		return status.UnknownResult(p.svc.Name, p.svc.StatusURL)
	}
	return status.Result{
		Service:       p.svc.Name,
		Indicator:     indicator,
		StatusPageURL: p.svc.StatusURL,
	}
}

func matchComponent(components []ghComponent, name string) (string, bool) {
	needle := strings.ToLower(name)
	for _, c := range components {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			if c.Status == "" {
				return "unknown", true
			}
			return c.Status, true
		}
	}
	return "", false
}
