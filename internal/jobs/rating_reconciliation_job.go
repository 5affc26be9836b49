package jobs

import (
	"context"
	"log/slog"

	"moving/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RatingReconciliationJob periodically recomputes every mover's average
// rating from the stored reviews so that drift introduced by partial
// failures is repaired without operator intervention.
type RatingReconciliationJob struct {
	handler commands.RecalculateRatingsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRatingReconciliationJob creates a new job for reconciling mover ratings.
// Uses RecalculateRatingsCommandHandler to sweep all movers on each run.
func NewRatingReconciliationJob(handler commands.RecalculateRatingsCommandHandler, logger *slog.Logger) *RatingReconciliationJob {
	return &RatingReconciliationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "rating_reconciliation_job"),
	}
}

// Start begins the rating reconciliation job to run at the top of every hour.
func (j *RatingReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRecalculateRatingsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Rating reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rating reconciliation job started (running hourly)")
	return nil
}

// Stop stops the rating reconciliation job.
func (j *RatingReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rating reconciliation job stopped")
}
