// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Item and history rows live in their own tables keyed by order id; the
// version column backs the optimistic concurrency check on updates.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status             string    `gorm:"type:varchar(16);index"`
	PaymentMethod      string    `gorm:"type:varchar(16)"`
	PaymentStatus      string    `gorm:"type:varchar(24)"`
	CustomerName       string
	CustomerPhone      string
	CustomerEmail      string
	Fulfillment        string `gorm:"type:varchar(16)"`
	Address            string
	TotalAmount        int64
	ChefID             *uuid.UUID `gorm:"type:uuid;index"`
	ChefAssignedAt     *time.Time
	ChefNotes          string
	DeliveryID         *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAssignedAt *time.Time
	DeliveryNotes      string
	CreatedAt          time.Time
	Version            int

	Items   []ItemDTO         `gorm:"foreignKey:OrderID;references:ID"`
	History []StatusChangeDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one priced line of an order. Lines are immutable after
// the order is placed and keep their menu position via line_no.
type ItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineNo     int       `gorm:"primaryKey"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Name       string
	NameAm     string
	UnitPrice  int64
	Quantity   int
}

// TableName specifies the database table name for order item lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

// StatusChangeDTO represents one entry of the append-only status history.
type StatusChangeDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineNo    int       `gorm:"primaryKey"`
	Status    string    `gorm:"type:varchar(16)"`
	ChangedAt time.Time
}

// TableName specifies the database table name for status history entries.
func (StatusChangeDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Status:        aggregate.Status().String(),
		PaymentMethod: aggregate.PaymentMethod().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		CustomerName:  aggregate.Customer().Name(),
		CustomerPhone: aggregate.Customer().Phone(),
		CustomerEmail: aggregate.Customer().Email(),
		Fulfillment:   aggregate.Customer().Fulfillment().String(),
		Address:       aggregate.Customer().Address(),
		TotalAmount:   aggregate.TotalAmount().Amount(),
		CreatedAt:     aggregate.CreatedAt(),
		Version:       aggregate.Version(),
	}

	if chef := aggregate.Chef(); chef != nil {
		id := chef.StaffID.Bytes()
		at := chef.AssignedAt
		dto.ChefID = &id
		dto.ChefAssignedAt = &at
		dto.ChefNotes = chef.Notes
	}
	if delivery := aggregate.Delivery(); delivery != nil {
		id := delivery.StaffID.Bytes()
		at := delivery.AssignedAt
		dto.DeliveryID = &id
		dto.DeliveryAssignedAt = &at
		dto.DeliveryNotes = delivery.Notes
	}

	for i, item := range aggregate.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			OrderID:    dto.ID,
			LineNo:     i + 1,
			MenuItemID: item.MenuItemID().Bytes(),
			Name:       item.Name(),
			NameAm:     item.NameAm(),
			UnitPrice:  item.UnitPrice().Amount(),
			Quantity:   item.Quantity(),
		})
	}
	for i, change := range aggregate.History() {
		dto.History = append(dto.History, StatusChangeDTO{
			OrderID:   dto.ID,
			LineNo:    i + 1,
			Status:    change.Status.String(),
			ChangedAt: change.ChangedAt,
		})
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	fulfillment, err := order.ParseFulfillment(dto.Fulfillment)
	if err != nil {
		return nil, err
	}
	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerPhone, dto.CustomerEmail, fulfillment, dto.Address)
	if err != nil {
		return nil, err
	}

	method, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	chef, err := assignmentToDomain(dto.ChefID, dto.ChefAssignedAt, dto.ChefNotes)
	if err != nil {
		return nil, err
	}
	delivery, err := assignmentToDomain(dto.DeliveryID, dto.DeliveryAssignedAt, dto.DeliveryNotes)
	if err != nil {
		return nil, err
	}

	history, err := historyToDomain(dto.History)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		items,
		customer,
		method,
		paymentStatus,
		status,
		chef,
		delivery,
		dto.CreatedAt,
		history,
		dto.Version,
	)
}

func itemsToDomain(dtos []ItemDTO) ([]order.Item, error) {
	items := make([]order.Item, 0, len(dtos))
	for _, dto := range dtos {
		menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
		if err != nil {
			return nil, err
		}
		price, err := kernel.NewMoney(dto.UnitPrice)
		if err != nil {
			return nil, err
		}
		item, err := order.NewItem(menuItemID, dto.Name, dto.NameAm, price, dto.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func historyToDomain(dtos []StatusChangeDTO) ([]order.StatusChange, error) {
	history := make([]order.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		status, err := order.ParseStatus(dto.Status)
		if err != nil {
			return nil, err
		}
		history = append(history, order.StatusChange{Status: status, ChangedAt: dto.ChangedAt})
	}

	return history, nil
}

func assignmentToDomain(id *uuid.UUID, assignedAt *time.Time, notes string) (*order.Assignment, error) {
	if id == nil {
		return nil, nil //nolint:nilnil //an empty slot is not an error
	}

	staffID, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}

	assignment := order.Assignment{StaffID: staffID, Notes: notes}
	if assignedAt != nil {
		assignment.AssignedAt = *assignedAt
	}

	return &assignment, nil
}
