package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/statusdeck/statusdeck/internal/config"
	"github.com/statusdeck/statusdeck/internal/poller"
	"github.com/statusdeck/statusdeck/internal/status"
)

// ErrNotOperational is returned by a oneshot run when any service reports
// something other than Operational or Manual.
var ErrNotOperational = errors.New("one or more services are not operational")

// RunPlain is the reduced-input mode used when raw keyboard input is
// unavailable or was disabled: it fetches, prints the table, and either exits
// (oneshot) or sleeps until the next refresh interval. Cancelling the context
// ends the loop cleanly.
func RunPlain(ctx context.Context, cfg *config.Config, out io.Writer, oneshot bool) error {
	p := poller.New(cfg.Services, cfg.Timeout)
	for {
		batch := sortByName(p.FetchAll(ctx))
		fmt.Fprintln(out, renderDashboard(batch, -1, time.Now(), cfg.Refresh, false, "", false))
		if oneshot {
			if !AllClear(batch) {
				return ErrNotOperational
			}
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(cfg.Refresh):
		}
	}
}

// AllClear reports whether every result in the batch is Operational or
// Manual.
func AllClear(batch []status.Result) bool {
	for _, r := range batch {
		switch r.Bucket() {
		case status.Operational, status.Manual:
		default:
			return false
		}
	}
	return true
}
