package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order with all its detail rows.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when no order
// with the given id exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse

	var (
		id                 uuid.UUID
		chefID             *uuid.UUID
		chefAssignedAt     sql.NullTime
		chefNotes          sql.NullString
		deliveryID         *uuid.UUID
		deliveryAssignedAt sql.NullTime
		deliveryNotes      sql.NullString
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			payment_method,
			payment_status,
			customer_name,
			customer_phone,
			customer_email,
			fulfillment,
			address,
			total_amount,
			created_at,
			chef_id,
			chef_assigned_at,
			chef_notes,
			delivery_id,
			delivery_assigned_at,
			delivery_notes
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.Status,
		&resp.PaymentMethod,
		&resp.PaymentStatus,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&resp.CustomerEmail,
		&resp.Fulfillment,
		&resp.Address,
		&resp.TotalAmount,
		&resp.CreatedAt,
		&chefID,
		&chefAssignedAt,
		&chefNotes,
		&deliveryID,
		&deliveryAssignedAt,
		&deliveryNotes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Chef, err = assignmentFromColumns(chefID, chefAssignedAt, chefNotes)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Delivery, err = assignmentFromColumns(deliveryID, deliveryAssignedAt, deliveryNotes)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.Items, err = h.loadItems(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.History, err = h.loadHistory(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT menu_item_id, name, name_am, unit_price, quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY line_no
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		var menuItemID uuid.UUID

		if err = rows.Scan(&menuItemID, &item.Name, &item.NameAm, &item.UnitPrice, &item.Quantity); err != nil {
			return nil, err
		}
		if item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}
		item.LineTotal = item.UnitPrice * int64(item.Quantity)
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) loadHistory(ctx context.Context, orderID kernel.UUID) ([]StatusChangeResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, changed_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY changed_at, line_no
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]StatusChangeResponse, 0)
	for rows.Next() {
		var change StatusChangeResponse
		if err = rows.Scan(&change.Status, &change.ChangedAt); err != nil {
			return nil, err
		}
		history = append(history, change)
	}

	return history, rows.Err()
}

func assignmentFromColumns(id *uuid.UUID, assignedAt sql.NullTime, notes sql.NullString) (*AssignmentResponse, error) {
	if id == nil {
		return nil, nil //nolint:nilnil //absence of an assignment is not an error
	}

	staffID, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}

	resp := AssignmentResponse{StaffID: staffID}
	if assignedAt.Valid {
		resp.AssignedAt = assignedAt.Time.UTC()
	} else {
		resp.AssignedAt = time.Time{}
	}
	if notes.Valid {
		resp.Notes = notes.String
	}

	return &resp, nil
}
