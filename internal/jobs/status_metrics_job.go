package jobs

import (
	"context"
	"log/slog"

	"errands/internal/core/application/usecases/queries"
	"errands/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultStatusMetricsSpec refreshes the gauges every 30 seconds.
const DefaultStatusMetricsSpec = "*/30 * * * * *"

type StatusCountsHandler interface {
	Handle(ctx context.Context, query queries.GetStatusCountsQuery) (queries.StatusCounts, error)
}

type StatusGauges interface {
	SetStatusCounts(entity string, counts map[string]int64)
}

// StatusMetricsJob periodically copies per-status row counts into gauges.
// A run that is still going when the next one is due is skipped.
type StatusMetricsJob struct {
	handler StatusCountsHandler
	gauges  StatusGauges
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewStatusMetricsJob(
	handler StatusCountsHandler,
	gauges StatusGauges,
	spec string,
	logger *slog.Logger,
) *StatusMetricsJob {
	if spec == "" {
		spec = DefaultStatusMetricsSpec
	}

	return &StatusMetricsJob{
		handler: handler,
		gauges:  gauges,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.With("component", "status_metrics_job"),
	}
}

func (j *StatusMetricsJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Status metrics refresh failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status metrics job started", "spec", j.spec)
	return nil
}

// RunOnce performs a single refresh.
func (j *StatusMetricsJob) RunOnce(ctx context.Context) error {
	counts, err := j.handler.Handle(ctx, queries.NewGetStatusCountsQuery())
	if err != nil {
		return err
	}

	j.gauges.SetStatusCounts(metrics.EntityShopperOrder, counts.ShopperOrders)
	j.gauges.SetStatusCounts(metrics.EntityShopperRequest, counts.ShopperRequests)
	j.gauges.SetStatusCounts(metrics.EntityRunnerRequest, counts.RunnerRequests)
	return nil
}

// Stop waits for a running refresh to finish.
func (j *StatusMetricsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Status metrics job stopped")
}
