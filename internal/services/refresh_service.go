package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"dashkit/internal/config"
)

// Refreshable is reloaded on a schedule.
type Refreshable interface {
	RefreshAll(ctx context.Context) error
}

// Refresher reloads database-backed collections on a cron schedule.
type Refresher struct {
	target  Refreshable
	timeout time.Duration
	cron    *cron.Cron
}

// NewRefresher parses spec (standard five-field or "@every 5m" form).
func NewRefresher(target Refreshable, spec string, timeout time.Duration) (*Refresher, error) {
	r := &Refresher{target: target, timeout: timeout, cron: cron.New()}
	if _, err := r.cron.AddFunc(spec, r.run); err != nil {
		return nil, fmt.Errorf("refresh schedule %q: %w", spec, err)
	}
	return r, nil
}

func (r *Refresher) run() {
	ctx := context.Background()
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	logger := config.Component("refresh")
	start := time.Now()
	if err := r.target.RefreshAll(ctx); err != nil {
		logger.Error().Err(err).Msg("collection refresh failed")
		return
	}
	logger.Debug().Dur("took", time.Since(start)).Msg("collections refreshed")
}

// Run starts the schedule and blocks until ctx is done, then waits for
// a running refresh to finish.
func (r *Refresher) Run(ctx context.Context) error {
	r.cron.Start()
	<-ctx.Done()
	<-r.cron.Stop().Done()
	return nil
}
