package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodcourt/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StaleOrdersJob watches for orders stuck in PENDING. Runs every minute and
// warns when orders have waited longer than the configured threshold without
// an employee taking them, so the kitchen can be alerted before clients
// start cancelling.
type StaleOrdersJob struct {
	db        *gorm.DB
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleOrdersJob creates the watchdog. Orders pending longer than
// threshold are reported.
func NewStaleOrdersJob(db *gorm.DB, threshold time.Duration, logger *slog.Logger) *StaleOrdersJob {
	return &StaleOrdersJob{
		db:        db,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "stale_orders_job"),
	}
}

// Start begins the watchdog to run every minute.
func (j *StaleOrdersJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		var count int64
		err := j.db.WithContext(ctx).
			Table("orders").
			Where("status = ? AND created_at < ?", int(order.Pending), time.Now().Add(-j.threshold)).
			Count(&count).Error
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order check failed", "error", err)
			return
		}

		if count > 0 {
			j.logger.WarnContext(ctx, "Orders pending past threshold",
				"count", count, "threshold", j.threshold.String())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale orders job started (running every minute)")
	return nil
}

// Stop stops the watchdog.
func (j *StaleOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale orders job stopped")
}
