package natspub

import (
	"context"
	"log/slog"

	"sewrica/internal/core/domain/model/order"
	"sewrica/internal/core/ports"
)

// LoggingPublisher wraps an EventPublisher and logs publish failures.
// Order state is already committed when publishing runs, so a failed
// publish is reported here and swallowed rather than failing the command.
type LoggingPublisher struct {
	inner  ports.EventPublisher
	logger *slog.Logger
}

// NewLoggingPublisher decorates inner with failure logging.
func NewLoggingPublisher(inner ports.EventPublisher, logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{
		inner:  inner,
		logger: logger.With("component", "event_publisher"),
	}
}

// PublishOrderStatusChanged forwards to the wrapped publisher. Errors are
// logged with the order id and never returned.
func (p *LoggingPublisher) PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error {
	if err := p.inner.PublishOrderStatusChanged(ctx, aggregate); err != nil {
		p.logger.Error("Failed to publish order status change",
			"order_id", aggregate.ID().String(),
			"status", aggregate.Status().String(),
			"error", err)
	}
	return nil
}
