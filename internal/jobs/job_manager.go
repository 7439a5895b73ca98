package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops every scheduled job together.
type JobManager struct {
	statusMetricsJob *StatusMetricsJob
}

func NewJobManager(
	statusCounts StatusCountsHandler,
	gauges StatusGauges,
	statusMetricsSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statusMetricsJob: NewStatusMetricsJob(statusCounts, gauges, statusMetricsSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statusMetricsJob.Start(); err != nil {
		return fmt.Errorf("failed to start status metrics job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusMetricsJob.Stop()
}
