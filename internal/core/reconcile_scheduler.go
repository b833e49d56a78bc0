package core

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// NewReconcileScheduler returns a cron that runs r.Sweep on schedule. Runs
// never overlap. The cron is not started.
func NewReconcileScheduler(r Reconciler, schedule string, timeout time.Duration, logger *zap.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		n, err := r.Sweep(ctx)
		if err != nil {
			logger.Error("Reconciliation sweep failed", zap.Int("consumed", n), zap.Error(err))
			return
		}
		if n > 0 {
			logger.Info("Reconciliation sweep finished", zap.Int("consumed", n))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid reconcile schedule %q: %w", schedule, err)
	}
	return c, nil
}
