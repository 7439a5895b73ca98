// Package jobs provides scheduled background tasks.
//
// Jobs run on github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// StatusMetricsJob counts shopper orders and requests of both orientations by
// status and publishes the counts as Prometheus gauges. Its schedule comes from
// METRICS_REFRESH_SPEC and defaults to every 30 seconds.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(statusCountsHandler, appMetrics, cfg.MetricsRefreshSpec, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and leaves the previous gauge values in place.
package jobs
