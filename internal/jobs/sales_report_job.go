package jobs

import (
	"context"
	"log/slog"
	"time"

	"sewrica/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// SalesReportJob logs a snapshot of the current day's sales once an hour.
// The restaurant staff watch the log stream during service; a broken report
// query surfaces here long before the end-of-day close.
type SalesReportJob struct {
	handler queries.GetDailySalesReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSalesReportJob creates a job that reports daily sales hourly.
func NewSalesReportJob(handler queries.GetDailySalesReportQueryHandler, logger *slog.Logger) *SalesReportJob {
	return &SalesReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "sales_report_job"),
	}
}

// Start begins the hourly report schedule.
func (j *SalesReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetDailySalesReportQuery(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Sales report job failed to build query", "error", err)
			return
		}

		report, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Sales report job failed", "error", err)
			return
		}

		orderCount := 0
		for _, status := range report.ByStatus {
			orderCount += status.Count
		}

		j.logger.InfoContext(ctx, "Daily sales snapshot",
			"day", report.Day.Format("2006-01-02"),
			"orders", orderCount,
			"revenue", report.TotalRevenue,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sales report job started (running hourly)")
	return nil
}

// Stop stops the report schedule.
func (j *SalesReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Sales report job stopped")
}
