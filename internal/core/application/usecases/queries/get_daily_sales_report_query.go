package queries

import (
	"errors"
	"time"

	"sewrica/internal/pkg/errs"
	"sewrica/internal/pkg/guard"
)

var ErrGetDailySalesReportQueryIsNotConstructed = errors.New(
	"GetDailySalesReportQuery must be created via NewGetDailySalesReportQuery constructor",
)

// GetDailySalesReportQuery summarizes one calendar day: settled revenue
// broken down by payment method, and order counts by status.
type GetDailySalesReportQuery struct {
	day time.Time

	guard guard.ConstructorGuard
}

// NewGetDailySalesReportQuery creates a report query for the given day.
// The time of day is ignored; the report covers the UTC calendar date.
func NewGetDailySalesReportQuery(day time.Time) (GetDailySalesReportQuery, error) {
	if day.IsZero() {
		return GetDailySalesReportQuery{}, errs.NewValueIsRequiredError("day")
	}

	return GetDailySalesReportQuery{
		day:   day.UTC().Truncate(24 * time.Hour),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDailySalesReportQuery) Validate() error {
	return q.guard.Validate(ErrGetDailySalesReportQueryIsNotConstructed)
}

// Day returns the UTC date the report covers.
func (q GetDailySalesReportQuery) Day() time.Time {
	return q.day
}

// MethodRevenueResponse is the settled revenue of one payment method.
type MethodRevenueResponse struct {
	Method  string
	Orders  int
	Revenue int64
}

// StatusCountResponse is the number of orders sitting in one status.
type StatusCountResponse struct {
	Status string
	Count  int
}

// GetDailySalesReportQueryResponse is the daily report read model.
type GetDailySalesReportQueryResponse struct {
	Day          time.Time
	TotalRevenue int64
	ByMethod     []MethodRevenueResponse
	ByStatus     []StatusCountResponse
}
