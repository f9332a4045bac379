package providers

import (
	"context"
	"net/http"
	"time"

	"github.com/statusdeck/statusdeck/internal/config"
	"github.com/statusdeck/statusdeck/internal/status"
)

// UserAgent is sent with every status fetch.
var UserAgent = "statusdeck/0.1"

// Provider checks one configured service and reports its normalized status.
// Check never fails: network errors, bad HTTP statuses, and malformed bodies
// are contained into an error-classified result, and responses that parse but
// lack the expected data yield an unknown result.
type Provider interface {
	Service() string
	StatusPageURL() string
	Check(ctx context.Context) status.Result
}

// Dispatch selects the adapter for a service by its configured type. An
// unrecognized type yields an adapter that always reports an error result,
// so a bad entry can never take down a whole batch.
func Dispatch(svc config.Service, timeout time.Duration) Provider {
	switch svc.Type {
	case config.StatuspageJSON:
		return NewStatuspage(svc, timeout)
	case config.GithubJSON:
		return NewGithub(svc, timeout)
	case config.GcpHTML:
		return NewGCP(svc, timeout)
	case config.ManualCheck:
		return NewManual(svc)
	default:
		return badKindProvider{svc: svc}
	}
}

// HTTP wrapper with timeout
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)
	return req, nil
}

type badKindProvider struct {
	svc config.Service
}

func (p badKindProvider) Service() string       { return p.svc.Name }
func (p badKindProvider) StatusPageURL() string { return p.svc.StatusURL }

func (p badKindProvider) Check(context.Context) status.Result {
	return status.ErrorResult(p.svc.Name, p.svc.StatusURL)
}
