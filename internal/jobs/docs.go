// Package jobs provides scheduled background tasks for orderdesk.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OverdueShipmentJob - Reports active shipments that are past their estimated arrival and not delivered
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager, err := jobs.NewJobManager(overdueHandler, "@every 1h", logger)
//	if err != nil {
//		log.Fatal("Invalid job schedule:", err)
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the standard five-field cron syntax plus the descriptors understood
// by cron.ParseStandard ("@hourly", "@every 30m"). The schedule comes from the
// OVERDUE_SCHEDULE configuration key.
//
// # Error Handling
//
// - A failed run is logged and the job stays scheduled
// - Failed job starts will stop any already running jobs
package jobs
