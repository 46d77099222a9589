// Package maintenance runs scheduled background jobs: the purge of
// soft-deleted rows that have aged past the configured retention window.
package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/imslabs/ims-api/internal/config"
	"github.com/imslabs/ims-api/internal/platform/metrics"
	"github.com/imslabs/ims-api/internal/store"
)

// Purger removes soft-deleted strengths and ATC codes once their deleted_at
// timestamp falls outside the retention window.
type Purger struct {
	cfg           config.MaintenanceConfig
	strengthStore store.StrengthStore
	atcCodeStore  store.ATCCodeStore
	scheduler     *gocron.Scheduler
	logger        *slog.Logger
}

// NewPurger creates a purge job runner. If logger is nil, a default logger
// will be used.
func NewPurger(
	cfg config.MaintenanceConfig,
	strengthStore store.StrengthStore,
	atcCodeStore store.ATCCodeStore,
	logger *slog.Logger,
) *Purger {
	if logger == nil {
		logger = slog.Default()
	}

	return &Purger{
		cfg:           cfg,
		strengthStore: strengthStore,
		atcCodeStore:  atcCodeStore,
		scheduler:     gocron.NewScheduler(time.UTC),
		logger:        logger.With(slog.String("component", "purger")),
	}
}

// Start schedules the purge at the configured interval and begins running it
// asynchronously. The first run happens one full interval after startup.
func (p *Purger) Start() error {
	if !p.cfg.PurgeEnabled {
		p.logger.Info("soft-delete purge disabled")
		return nil
	}

	_, err := p.scheduler.Every(p.cfg.PurgeIntervalHours).Hours().Do(func() {
		p.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	p.scheduler.StartAsync()
	p.logger.Info("soft-delete purge scheduled",
		slog.Int("interval_hours", p.cfg.PurgeIntervalHours),
		slog.Int("retention_days", p.cfg.RetentionDays))
	return nil
}

// Stop halts the scheduler. Running jobs finish before Stop returns.
func (p *Purger) Stop() {
	p.scheduler.Stop()
}

// RunOnce executes a single purge pass. A failure on one table does not stop
// the other from being purged.
func (p *Purger) RunOnce(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-p.cfg.Retention())

	purged, err := p.strengthStore.PurgeDeleted(ctx, cutoff)
	if err != nil {
		p.logger.Error("failed to purge soft-deleted strengths",
			slog.String("error", err.Error()))
	} else if purged > 0 {
		metrics.MaintenancePurgedRowsTotal.WithLabelValues("strengths").Add(float64(purged))
		p.logger.Info("purged soft-deleted strengths", slog.Int64("rows", purged))
	}

	purged, err = p.atcCodeStore.PurgeDeleted(ctx, cutoff)
	if err != nil {
		p.logger.Error("failed to purge soft-deleted atc codes",
			slog.String("error", err.Error()))
	} else if purged > 0 {
		metrics.MaintenancePurgedRowsTotal.WithLabelValues("atc_codes").Add(float64(purged))
		p.logger.Info("purged soft-deleted atc codes", slog.Int64("rows", purged))
	}
}
