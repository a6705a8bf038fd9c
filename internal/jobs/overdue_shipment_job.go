package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// OverdueShipmentJob logs every overdue shipment on a cron schedule.
type OverdueShipmentJob struct {
	handler  queries.ListOverdueShipmentsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	today    func() time.Time
}

// NewOverdueShipmentJob creates the job. The schedule is validated here so a bad
// configuration fails at startup.
func NewOverdueShipmentJob(
	handler queries.ListOverdueShipmentsQueryHandler,
	schedule string,
	logger *slog.Logger,
) (*OverdueShipmentJob, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid overdue shipment schedule %q: %w", schedule, err)
	}

	return &OverdueShipmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "overdue_shipment_job"),
		today:    kernel.Today,
	}, nil
}

// Start registers the job with its schedule and starts the scheduler.
func (j *OverdueShipmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue shipment job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue shipment job started", "schedule", j.schedule)
	return nil
}

// Run performs one pass and returns the number of overdue shipments found.
func (j *OverdueShipmentJob) Run(ctx context.Context) (int, error) {
	runID := uuid.NewString()

	query, err := queries.NewListOverdueShipmentsQuery(j.today())
	if err != nil {
		return 0, err
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	for _, item := range overdue {
		j.logger.WarnContext(ctx, "Shipment overdue",
			"run_id", runID,
			"shipment_id", item.Shipment.ID.Int64(),
			"tracking", item.Shipment.Tracking,
			"carrier", item.Shipment.Carrier.String(),
			"estimated_arrival", kernel.FormatDate(item.Shipment.EstimatedArrival),
			"days_late", item.DaysLate,
			"order_id", item.Shipment.OrderID.Int64(),
		)
	}
	j.logger.DebugContext(ctx, "Overdue shipment pass finished", "run_id", runID, "overdue", len(overdue))

	return len(overdue), nil
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *OverdueShipmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue shipment job stopped")
}
