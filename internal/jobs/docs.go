// Package jobs provides scheduled background tasks for the moving service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager, which wires command handlers into schedules and offers a
// unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(recalculateRatingsHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// RatingReconciliationJob runs hourly ("0 * * * *") and recomputes every
// mover's average rating from the stored reviews. The sweep is idempotent:
// movers whose stored rating already matches are left untouched.
package jobs
