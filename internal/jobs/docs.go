// Package jobs provides scheduled background tasks for the order-taking service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six field format with seconds.
//
// # Available Jobs
//
// 1. OutboxPublisherJob - publishes pending order events from the outbox to Kafka
// 2. CatalogRefreshJob - reloads the in-memory product catalog from the database
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewOutboxPublisherJob(publishHandler, "*/2 * * * * *", 100, logger),
//		jobs.NewCatalogRefreshJob(catalog, "0 */5 * * * *", logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Jobs never stop on a failed run. Failures are logged and the next run
// retries: unpublished events stay in the outbox and a failed catalog
// refresh keeps the previous snapshot.
package jobs
