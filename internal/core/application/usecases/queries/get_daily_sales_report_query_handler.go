package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetDailySalesReportQueryHandler aggregates one day's settled payments and
// order statuses for the admin report.
type GetDailySalesReportQueryHandler struct {
	db *gorm.DB
}

// NewGetDailySalesReportQueryHandler creates a handler for daily reports.
func NewGetDailySalesReportQueryHandler(db *gorm.DB) GetDailySalesReportQueryHandler {
	return GetDailySalesReportQueryHandler{db: db}
}

// Handle executes the report. Revenue counts payments confirmed on the
// report day; status counts cover orders created on it.
func (h GetDailySalesReportQueryHandler) Handle(
	ctx context.Context,
	query GetDailySalesReportQuery,
) (GetDailySalesReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDailySalesReportQueryResponse{}, err
	}

	dayStart := query.Day()
	dayEnd := dayStart.Add(24 * time.Hour)
	resp := GetDailySalesReportQueryResponse{Day: dayStart}

	revenueRows, err := h.db.WithContext(ctx).Raw(`
		SELECT p.method, COUNT(p.id), COALESCE(SUM(o.total_amount), 0)
		FROM payments p
		JOIN orders o ON o.id = p.order_id
		WHERE p.confirmed_at >= ? AND p.confirmed_at < ?
		GROUP BY p.method
		ORDER BY p.method
	`, dayStart, dayEnd).Rows()
	if err != nil {
		return GetDailySalesReportQueryResponse{}, err
	}
	defer revenueRows.Close()

	resp.ByMethod = make([]MethodRevenueResponse, 0)
	for revenueRows.Next() {
		var row MethodRevenueResponse
		if err = revenueRows.Scan(&row.Method, &row.Orders, &row.Revenue); err != nil {
			return GetDailySalesReportQueryResponse{}, err
		}
		resp.TotalRevenue += row.Revenue
		resp.ByMethod = append(resp.ByMethod, row)
	}
	if err = revenueRows.Err(); err != nil {
		return GetDailySalesReportQueryResponse{}, err
	}

	statusRows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		WHERE created_at >= ? AND created_at < ?
		GROUP BY status
		ORDER BY status
	`, dayStart, dayEnd).Rows()
	if err != nil {
		return GetDailySalesReportQueryResponse{}, err
	}
	defer statusRows.Close()

	resp.ByStatus = make([]StatusCountResponse, 0)
	for statusRows.Next() {
		var row StatusCountResponse
		if err = statusRows.Scan(&row.Status, &row.Count); err != nil {
			return GetDailySalesReportQueryResponse{}, err
		}
		resp.ByStatus = append(resp.ByStatus, row)
	}

	return resp, statusRows.Err()
}
