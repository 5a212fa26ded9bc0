package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"kitchenpos/internal/core/application/usecases/commands"
)

// DefaultOutboxSchedule runs the relay every second.
const DefaultOutboxSchedule = "* * * * * *"

const relayTimeout = 30 * time.Second

type outboxPublisher interface {
	Handle(ctx context.Context, cmd commands.PublishOutboxMessagesCommand) (int, error)
}

// OutboxRelayJob periodically publishes committed domain events to the
// message bus. A run is skipped while the previous one is still going, so
// messages leave the outbox in the order they were written.
type OutboxRelayJob struct {
	handler  outboxPublisher
	schedule string
	cmd      commands.PublishOutboxMessagesCommand
	cron     *cron.Cron
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewOutboxRelayJob creates the relay. batchSize bounds how many messages a
// single run publishes.
func NewOutboxRelayJob(
	handler outboxPublisher,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) (*OutboxRelayJob, error) {
	cmd, err := commands.NewPublishOutboxMessagesCommand(batchSize)
	if err != nil {
		return nil, err
	}

	if schedule == "" {
		schedule = DefaultOutboxSchedule
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &OutboxRelayJob{
		handler:  handler,
		schedule: schedule,
		cmd:      cmd,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "outbox_relay_job"),
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Start schedules the relay. It fails when the schedule cannot be parsed.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(j.ctx, "Outbox relay job started", "schedule", j.schedule)
	return nil
}

// Stop cancels a run in progress and waits for it to return.
func (j *OutboxRelayJob) Stop() {
	j.cancel()
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

func (j *OutboxRelayJob) run() {
	ctx, cancel := context.WithTimeout(j.ctx, relayTimeout)
	defer cancel()

	published, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		if j.ctx.Err() != nil {
			// stopping
			return
		}
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "published", published, "error", err)
		return
	}

	if published > 0 {
		j.logger.DebugContext(ctx, "Outbox messages published", "count", published)
	}
}
