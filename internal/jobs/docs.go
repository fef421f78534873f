// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are built on github.com/robfig/cron/v3 with seconds resolution.
//
// # Available Jobs
//
// OutboxRelayJob drains the transactional outbox into Kafka. The default
// schedule "*/5 * * * * *" runs it every five seconds; a run that is still
// busy when the next tick fires makes that tick a no-op.
//
// # Usage
//
//	relay, err := jobs.NewOutboxRelayJob(handler, "*/5 * * * * *", 100, metrics, logger)
//	if err != nil {
//		return err
//	}
//	jobManager := jobs.NewJobManager(relay)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failed runs are logged and retried on the next tick. StartAll stops the jobs
// it already started when a later one fails to start.
package jobs
