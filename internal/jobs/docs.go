// Package jobs provides scheduled background tasks for the errand platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. NotificationRetryJob - Runs every minute to re-send SMS notifications
// whose delivery failed, until each notification's retry budget is spent.
//
// 2. PaymentSyncJob - Runs every five minutes to reconcile payments stuck
// pending, asking the provider for intents whose webhook never arrived.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatcher, reconcileHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The retry job logs errors and keeps running; a notification that exhausts
// its retry budget stays in the failed state for manual inspection.
package jobs
