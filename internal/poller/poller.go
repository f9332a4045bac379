package poller

import (
	"context"
	"sync"
	"time"

	"github.com/statusdeck/statusdeck/internal/config"
	"github.com/statusdeck/statusdeck/internal/logx"
	"github.com/statusdeck/statusdeck/internal/providers"
	"github.com/statusdeck/statusdeck/internal/status"
)

// Poller fans one check per configured service out over goroutines and joins
// them into a single batch. The batch always has the same length and order as
// the service list: a failing or slow service is reported as an error result
// in its slot and can never shorten, block, or abort the rest of the batch.
type Poller struct {
	providers []providers.Provider
	timeout   time.Duration
}

func New(services []config.Service, timeout time.Duration) *Poller {
	ps := make([]providers.Provider, len(services))
	for i, svc := range services {
		ps[i] = providers.Dispatch(svc, timeout)
	}
	return &Poller{providers: ps, timeout: timeout}
}

// FetchAll checks every service concurrently and returns the complete batch.
// Each check is bounded by the per-request timeout. FetchAll itself never
// fails.
func (p *Poller) FetchAll(ctx context.Context) []status.Result {
	results := make([]status.Result, len(p.providers))
	var wg sync.WaitGroup
	for i, pr := range p.providers {
		wg.Add(1)
		go func(i int, pr providers.Provider) {
			defer wg.Done()
			defer func() {
				if rec := recover(); rec != nil {
					logx.Errorf("check panicked service=%s: %v", pr.Service(), rec)
					results[i] = status.ErrorResult(pr.Service(), pr.StatusPageURL())
				}
			}()
			cctx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()
			results[i] = pr.Check(cctx)
		}(i, pr)
	}
	wg.Wait()
	return results
}
