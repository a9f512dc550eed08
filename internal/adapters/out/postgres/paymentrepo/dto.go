// Package paymentrepo persists payment records, the durable evidence of
// settled orders.
package paymentrepo

import (
	"time"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/order"
	"sewrica/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment
// records. One completed record exists per settled order; the external
// reference is unique so card confirmations stay idempotent.
type PaymentDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Method            string    `gorm:"type:varchar(16)"`
	ExternalReference string    `gorm:"index"`
	AmountReceived    *int64
	ChangeAmount      *int64
	ConfirmedAt       time.Time
}

// TableName specifies the database table name for payment records.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(record *payment.Record) PaymentDTO {
	dto := PaymentDTO{
		ID:                record.ID().Bytes(),
		OrderID:           record.OrderID().Bytes(),
		Method:            record.Method().String(),
		ExternalReference: record.ExternalReference(),
		ConfirmedAt:       record.ConfirmedAt(),
	}

	if received := record.AmountReceived(); received != nil {
		amount := received.Amount()
		dto.AmountReceived = &amount
	}
	if change := record.Change(); change != nil {
		amount := change.Amount()
		dto.ChangeAmount = &amount
	}

	return dto
}

func toDomain(dto PaymentDTO) (*payment.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	method, err := order.ParsePaymentMethod(dto.Method)
	if err != nil {
		return nil, err
	}

	received, err := moneyFromColumn(dto.AmountReceived)
	if err != nil {
		return nil, err
	}
	change, err := moneyFromColumn(dto.ChangeAmount)
	if err != nil {
		return nil, err
	}

	return payment.RestoreRecord(id, orderID, method, dto.ExternalReference, received, change, dto.ConfirmedAt)
}

func moneyFromColumn(amount *int64) (*kernel.Money, error) {
	if amount == nil {
		return nil, nil //nolint:nilnil //cash-only columns are absent for other methods
	}

	money, err := kernel.NewMoney(*amount)
	if err != nil {
		return nil, err
	}

	return &money, nil
}
