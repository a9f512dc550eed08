package queries

import (
	"context"

	"sewrica/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists order summaries for boards and admin views.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing. Newest orders come first; with a status
// filter the oldest come first, matching how the kitchen works its queue.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseSelect = `
		SELECT id, status, payment_method, payment_status, customer_name, fulfillment, total_amount, created_at
		FROM orders
	`

	tx := h.db.WithContext(ctx).Raw(baseSelect + ` ORDER BY created_at DESC`)
	if query.Status() != nil {
		tx = h.db.WithContext(ctx).Raw(baseSelect+` WHERE status = ? ORDER BY created_at`, query.Status().String())
	}

	sqlRows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer sqlRows.Close()

	summaries := make([]OrderSummaryResponse, 0)
	for sqlRows.Next() {
		var summary OrderSummaryResponse
		var id uuid.UUID

		err = sqlRows.Scan(
			&id,
			&summary.Status,
			&summary.PaymentMethod,
			&summary.PaymentStatus,
			&summary.CustomerName,
			&summary.Fulfillment,
			&summary.TotalAmount,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, sqlRows.Err()
}
