package jobs

import (
	"context"
	"log/slog"

	"seomarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const DefaultOutboxRelaySchedule = "*/5 * * * * *"

type outboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error)
}

// RelayObserver is told the outcome of every relay run.
type RelayObserver interface {
	ObserveOutboxRelay(published int, err error)
}

type nopRelayObserver struct{}

func (nopRelayObserver) ObserveOutboxRelay(int, error) {}

// OutboxRelayJob periodically publishes pending outbox messages.
type OutboxRelayJob struct {
	handler  outboxRelayer
	cmd      commands.RelayOutboxCommand
	schedule string
	observer RelayObserver
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOutboxRelayJob validates batchSize up front; the schedule is parsed by
// Start. A nil observer is replaced by a no-op.
func NewOutboxRelayJob(
	handler outboxRelayer,
	schedule string,
	batchSize int,
	observer RelayObserver,
	logger *slog.Logger,
) (*OutboxRelayJob, error) {
	cmd, err := commands.NewRelayOutboxCommand(batchSize)
	if err != nil {
		return nil, err
	}
	if schedule == "" {
		schedule = DefaultOutboxRelaySchedule
	}
	if observer == nil {
		observer = nopRelayObserver{}
	}

	return &OutboxRelayJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		observer: observer,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "outbox_relay_job"),
	}, nil
}

func (j *OutboxRelayJob) Name() string {
	return "outbox relay job"
}

func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started", "schedule", j.schedule, "batch_size", j.cmd.BatchSize())
	return nil
}

// Stop waits for a run in progress to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}

// RunOnce performs a single relay run and returns how many messages went out.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) int {
	published, err := j.handler.Handle(ctx, j.cmd)
	j.observer.ObserveOutboxRelay(published, err)

	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay failed", "error", err)
		return 0
	}
	if published > 0 {
		j.logger.DebugContext(ctx, "Outbox messages published", "count", published)
	}
	return published
}
