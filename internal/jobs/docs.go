// Package jobs provides scheduled background tasks for the point of sale.
//
// Jobs are cron based (github.com/robfig/cron/v3, with a seconds field).
//
// # Available Jobs
//
// OutboxRelayJob publishes the domain events that committed units of work
// left in the outbox table. The default schedule "* * * * * *" runs it every
// second; OUTBOX_SCHEDULE overrides it.
//
// # Usage
//
//	relay, err := jobs.NewOutboxRelayJob(publishHandler, cfg.OutboxSchedule, cfg.OutboxBatchSize, logger)
//	if err != nil {
//		return err
//	}
//
//	jobManager := jobs.NewJobManager(relay)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Messages that were
// not acknowledged stay in the outbox, so delivery is at least once.
package jobs
