package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/jobs"
)

type MockPublishHandler struct{ mock.Mock }

func (m *MockPublishHandler) Handle(ctx context.Context, cmd commands.PublishOrderEventsCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type countingRefresher struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (r *countingRefresher) Refresh(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.err
}

func (r *countingRefresher) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestOutboxPublisherJob_Run(t *testing.T) {
	logger, logs := newLogger()
	handler := new(MockPublishHandler)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.PublishOrderEventsCommand) bool {
		return cmd.BatchSize() == 25
	})).Return(3, nil).Once()

	job := jobs.NewOutboxPublisherJob(handler, "* * * * * *", 25, logger)
	job.Run(t.Context())

	handler.AssertExpectations(t)
	assert.Contains(t, logs.String(), "published=3")
	assert.Contains(t, logs.String(), "component=outbox_publisher_job")
}

func TestOutboxPublisherJob_RunLogsFailure(t *testing.T) {
	logger, logs := newLogger()
	handler := new(MockPublishHandler)
	handler.On("Handle", mock.Anything, mock.Anything).Return(1, errors.New("broker down")).Once()

	job := jobs.NewOutboxPublisherJob(handler, "* * * * * *", 10, logger)
	job.Run(t.Context())

	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "broker down")
}

func TestOutboxPublisherJob_StartRejectsInvalidConfig(t *testing.T) {
	logger, _ := newLogger()

	err := jobs.NewOutboxPublisherJob(new(MockPublishHandler), "* * * * * *", 0, logger).Start()
	require.ErrorIs(t, err, commands.ErrBatchSizeIsInvalid)

	err = jobs.NewOutboxPublisherJob(new(MockPublishHandler), "not a schedule", 10, logger).Start()
	require.Error(t, err)
}

func TestCatalogRefreshJob_Run(t *testing.T) {
	logger, logs := newLogger()
	refresher := &countingRefresher{err: errors.New("db down")}

	jobs.NewCatalogRefreshJob(refresher, "* * * * * *", logger).Run(t.Context())

	assert.Equal(t, 1, refresher.Calls())
	assert.Contains(t, logs.String(), "Catalog refresh job failed")
}

func TestCatalogRefreshJob_RunsOnSchedule(t *testing.T) {
	logger, _ := newLogger()
	refresher := &countingRefresher{}

	job := jobs.NewCatalogRefreshJob(refresher, "* * * * * *", logger)
	require.NoError(t, job.Start())
	defer job.Stop()

	assert.Eventually(t, func() bool { return refresher.Calls() > 0 }, 3*time.Second, 50*time.Millisecond)
}

func TestJobManager_StartAllStopsStartedJobsOnFailure(t *testing.T) {
	logger, logs := newLogger()
	refresher := &countingRefresher{}

	manager := jobs.NewJobManager(
		jobs.NewOutboxPublisherJob(new(MockPublishHandler), "* * * * * *", 0, logger),
		jobs.NewCatalogRefreshJob(refresher, "0 0 0 1 1 *", logger),
	)

	err := manager.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outbox publisher job")
	assert.Contains(t, logs.String(), "Catalog refresh job stopped")
}

func TestJobManager_StartAndStop(t *testing.T) {
	logger, logs := newLogger()

	manager := jobs.NewJobManager(
		jobs.NewOutboxPublisherJob(new(MockPublishHandler), "0 0 0 1 1 *", 10, logger),
		jobs.NewCatalogRefreshJob(&countingRefresher{}, "0 0 0 1 1 *", logger),
	)

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Contains(t, logs.String(), "Outbox publisher job stopped")
	assert.Contains(t, logs.String(), "Catalog refresh job stopped")
}
