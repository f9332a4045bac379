package providers

import (
	"context"

	"github.com/statusdeck/statusdeck/internal/config"
	"github.com/statusdeck/statusdeck/internal/status"
)

// ManualProvider is for services whose dashboards cannot be reliably parsed
// (e.g. AWS). It never performs a request; the result always classifies as
// Manual, telling the user to check the page themselves.
type ManualProvider struct {
	svc config.Service
}

func NewManual(svc config.Service) *ManualProvider {
	return &ManualProvider{svc: svc}
}

func (p *ManualProvider) Service() string       { return p.svc.Name }
func (p *ManualProvider) StatusPageURL() string { return p.svc.StatusURL }

func (p *ManualProvider) Check(context.Context) status.Result {
	return status.Result{
		Service:       p.svc.Name,
		Indicator:     "manual",
		StatusPageURL: p.svc.StatusURL,
	}
}
