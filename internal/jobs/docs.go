// Package jobs provides scheduled background tasks for the order fulfillment
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// There is a single job today: SalesReportJob logs an hourly snapshot of the
// current day's order counts and revenue so the staff can watch the day's
// takings in the log stream.
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(salesReportHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// Order status transitions are never time-driven; jobs only read.
package jobs
