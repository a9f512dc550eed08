package queries_test

import (
	"context"
	"time"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/order"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, "", err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return container, dsn, nil
}

// buildTestOrder creates an order with a single line worth total, placed at
// createdAt.
func buildTestOrder(method order.PaymentMethod, createdAt time.Time, total int64) (*order.Order, error) {
	price, err := kernel.NewMoney(total)
	if err != nil {
		return nil, err
	}

	item, err := order.NewItem(kernel.NewUUID(), "Doro Wat", "ዶሮ ወጥ", price, 1)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(
		"Abel Tesfaye", "+251911234567", "abel@example.com",
		order.FulfillmentDelivery, "Bole Road 12, Addis Ababa")
	if err != nil {
		return nil, err
	}

	return order.NewOrder(kernel.NewUUID(), []order.Item{item}, customer, method, createdAt)
}
