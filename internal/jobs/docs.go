// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - publishes committed order events from the outbox table to Kafka or RabbitMQ
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	relay := jobs.NewOutboxRelayJob(relayHandler, relayCmd, cfg.OutboxRelaySchedule, logger)
//	jobManager := jobs.NewJobManager(relay)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay uses a six-field cron expression (seconds included), every two seconds by default.
// Overlapping runs are skipped, so a slow broker never stacks up concurrent relays.
//
// # Error Handling
//
// - Relay failures are logged; unsent events stay in the outbox and are retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
