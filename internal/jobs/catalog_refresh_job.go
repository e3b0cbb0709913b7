package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// CatalogRefresher reloads the product catalog.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// CatalogRefreshJob reloads the product catalog on a schedule.
type CatalogRefreshJob struct {
	catalog  CatalogRefresher
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCatalogRefreshJob creates a catalog refresh job.
func NewCatalogRefreshJob(catalog CatalogRefresher, schedule string, logger *slog.Logger) *CatalogRefreshJob {
	return &CatalogRefreshJob{
		catalog:  catalog,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "catalog_refresh_job"),
	}
}

// Start schedules the job. The first refresh happens at the first scheduled time.
func (j *CatalogRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog refresh job started", "schedule", j.schedule)
	return nil
}

// Run refreshes the catalog once.
func (j *CatalogRefreshJob) Run(ctx context.Context) {
	if err := j.catalog.Refresh(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Catalog refresh job failed", "error", err)
	}
}

// Stop stops the schedule and waits for a running refresh to finish.
func (j *CatalogRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}
