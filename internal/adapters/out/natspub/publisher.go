package natspub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sewrica/internal/core/domain/model/order"
	"sewrica/internal/pkg/errs"

	"github.com/nats-io/nats.go"
)

// OrderStatusChangedEvent is the wire payload published after an order
// changes state. Consumers see the latest status together with the payment
// state so kitchen displays and notification workers do not have to query
// back.
type OrderStatusChangedEvent struct {
	EventID       string    `json:"event_id"`
	OrderID       string    `json:"order_id"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	TotalAmount   int64     `json:"total_amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Publisher sends order lifecycle events to a NATS subject.
type Publisher struct {
	conn    *nats.Conn
	subject string
}

func NewPublisher(url string, subject string) (*Publisher, error) {
	if subject == "" {
		return nil, errs.NewValueIsRequiredError("subject")
	}

	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &Publisher{conn: conn, subject: subject}, nil
}

func (p *Publisher) PublishOrderStatusChanged(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := OrderStatusChangedEvent{
		EventID:       fmt.Sprintf("%s:%d", aggregate.ID(), aggregate.Version()),
		OrderID:       aggregate.ID().String(),
		Status:        aggregate.Status().String(),
		PaymentMethod: aggregate.PaymentMethod().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		TotalAmount:   aggregate.TotalAmount().Amount(),
		OccurredAt:    time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order status event: %w", err)
	}

	return p.conn.Publish(p.subject, payload)
}

func (p *Publisher) Close() {
	p.conn.Close()
}
