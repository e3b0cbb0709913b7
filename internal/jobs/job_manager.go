package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxPublisherJob *OutboxPublisherJob
	catalogRefreshJob  *CatalogRefreshJob
}

// NewJobManager creates a job manager for the given jobs.
func NewJobManager(outboxPublisherJob *OutboxPublisherJob, catalogRefreshJob *CatalogRefreshJob) *JobManager {
	return &JobManager{
		outboxPublisherJob: outboxPublisherJob,
		catalogRefreshJob:  catalogRefreshJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.catalogRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start catalog refresh job: %w", err)
	}

	if err := jm.outboxPublisherJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.catalogRefreshJob.Stop()
		return fmt.Errorf("failed to start outbox publisher job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxPublisherJob.Stop()
	jm.catalogRefreshJob.Stop()
}
