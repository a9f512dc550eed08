package ports

import (
	"context"

	"sewrica/internal/core/domain/model/order"
)

// EventPublisher emits order lifecycle events to interested consumers
// (kitchen displays, notification workers). Publishing happens after the
// transaction commits and is best effort: a broker outage must never fail
// the command that produced the event.
type EventPublisher interface {
	// PublishOrderStatusChanged announces that the order reached a new status.
	PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error
}
