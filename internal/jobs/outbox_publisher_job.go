package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"ordertaking/internal/core/application/usecases/commands"
)

// PublishOrderEventsHandler publishes one batch of outbox messages.
type PublishOrderEventsHandler interface {
	Handle(ctx context.Context, cmd commands.PublishOrderEventsCommand) (int, error)
}

// OutboxPublisherJob moves pending order events to the event bus on a schedule.
// cron.SkipIfStillRunning keeps runs from overlapping.
type OutboxPublisherJob struct {
	handler   PublishOrderEventsHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxPublisherJob creates a job publishing up to batchSize events per run.
func NewOutboxPublisherJob(
	handler PublishOrderEventsHandler,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *OutboxPublisherJob {
	logger = logger.With("component", "outbox_publisher_job")
	return &OutboxPublisherJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}
}

// Start schedules the job.
func (j *OutboxPublisherJob) Start() error {
	if _, err := commands.NewPublishOrderEventsCommand(j.batchSize); err != nil {
		return err
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox publisher job started", "schedule", j.schedule)
	return nil
}

// Run publishes one batch. It is what the schedule invokes.
func (j *OutboxPublisherJob) Run(ctx context.Context) {
	cmd, err := commands.NewPublishOrderEventsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox publisher job misconfigured", "error", err)
		return
	}

	published, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox publisher job failed", "published", published, "error", err)
		return
	}

	if published > 0 {
		j.logger.DebugContext(ctx, "Order events published", "published", published)
	}
}

// Stop stops the schedule and waits for a running batch to finish.
func (j *OutboxPublisherJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox publisher job stopped")
}
