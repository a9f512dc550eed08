package http

import (
	"time"

	"sewrica/internal/core/application/usecases/queries"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one line of an incoming order.
type NewOrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	NameAm     string `json:"nameAm,omitempty"`
	UnitPrice  int64  `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
}

// NewOrderCustomer is the customer snapshot captured at checkout.
type NewOrderCustomer struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	Fulfillment string `json:"fulfillment"`
	Address     string `json:"address,omitempty"`
}

// NewOrder is the checkout request body.
type NewOrder struct {
	Items         []NewOrderItem   `json:"items"`
	Customer      NewOrderCustomer `json:"customer"`
	PaymentMethod string           `json:"paymentMethod"`
}

// ChangeStatus is the body of a status advance request.
type ChangeStatus struct {
	Status string `json:"status"`
}

// CreateIntent asks the card processor for a payment intent.
type CreateIntent struct {
	OrderID string `json:"orderId"`
}

// ConfirmCard reports the processor's charge verdict.
type ConfirmCard struct {
	OrderID         string `json:"orderId"`
	PaymentIntentID string `json:"paymentIntentId"`
	Succeeded       bool   `json:"succeeded"`
}

// CashPayment records cash handed over at settlement.
type CashPayment struct {
	AmountReceived int64 `json:"amountReceived"`
}

// MobileMoneyConfirm carries the operator transaction reference.
type MobileMoneyConfirm struct {
	Reference string `json:"reference"`
}

// NewStaff registers a staff member in the dispatch pool.
type NewStaff struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// AssignStaff dispatches a staff member to an order.
type AssignStaff struct {
	StaffID string `json:"staffId"`
	Notes   string `json:"notes,omitempty"`
}

// PaymentInstructions tells the customer how to pay over mobile money.
type PaymentInstructions struct {
	Recipient string `json:"recipient"`
	Account   string `json:"account"`
	DialCode  string `json:"dialCode"`
	Reference string `json:"reference"`
}

// PaymentIntent is the response to a card payment initiation.
type PaymentIntent struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
}

// PaymentResult reports a settled or failed payment attempt.
type PaymentResult struct {
	PaymentStatus  string `json:"paymentStatus"`
	Reference      string `json:"reference,omitempty"`
	AmountReceived *int64 `json:"amountReceived,omitempty"`
	Change         *int64 `json:"change,omitempty"`
}

// OrderItem is one priced line of an order response.
type OrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	NameAm     string `json:"nameAm,omitempty"`
	UnitPrice  int64  `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
	LineTotal  int64  `json:"lineTotal"`
}

// StatusChange is one entry of an order's history.
type StatusChange struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
}

// Assignment describes a dispatched staff slot.
type Assignment struct {
	StaffID    string    `json:"staffId"`
	AssignedAt time.Time `json:"assignedAt"`
	Notes      string    `json:"notes,omitempty"`
}

// Order is the full order representation.
type Order struct {
	ID            string         `json:"id"`
	Status        string         `json:"status"`
	PaymentMethod string         `json:"paymentMethod"`
	PaymentStatus string         `json:"paymentStatus"`
	Customer      OrderCustomer  `json:"customer"`
	TotalAmount   int64          `json:"totalAmount"`
	CreatedAt     time.Time      `json:"createdAt"`
	Chef          *Assignment    `json:"chef,omitempty"`
	Delivery      *Assignment    `json:"delivery,omitempty"`
	Items         []OrderItem    `json:"items"`
	History       []StatusChange `json:"history"`
}

// OrderCustomer is the customer snapshot in order responses.
type OrderCustomer struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	Fulfillment string `json:"fulfillment"`
	Address     string `json:"address,omitempty"`
}

// OrderSummary is one row of the order list.
type OrderSummary struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentStatus string    `json:"paymentStatus"`
	CustomerName  string    `json:"customerName"`
	Fulfillment   string    `json:"fulfillment"`
	TotalAmount   int64     `json:"totalAmount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// StaffWorkload is one staff member with their active order count.
type StaffWorkload struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	ActiveOrders int    `json:"activeOrders"`
}

// MethodRevenue is one payment method's share of daily revenue.
type MethodRevenue struct {
	Method  string `json:"method"`
	Orders  int    `json:"orders"`
	Revenue int64  `json:"revenue"`
}

// StatusCount is the number of orders in one status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DailySalesReport summarizes a calendar day's orders and revenue.
type DailySalesReport struct {
	Day          string          `json:"day"`
	TotalRevenue int64           `json:"totalRevenue"`
	ByMethod     []MethodRevenue `json:"byMethod"`
	ByStatus     []StatusCount   `json:"byStatus"`
}

func orderFromReadModel(m queries.GetOrderQueryResponse) Order {
	items := make([]OrderItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = OrderItem{
			MenuItemID: item.MenuItemID.String(),
			Name:       item.Name,
			NameAm:     item.NameAm,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			LineTotal:  item.LineTotal,
		}
	}

	history := make([]StatusChange, len(m.History))
	for i, change := range m.History {
		history[i] = StatusChange{Status: change.Status, ChangedAt: change.ChangedAt}
	}

	return Order{
		ID:            m.ID.String(),
		Status:        m.Status,
		PaymentMethod: m.PaymentMethod,
		PaymentStatus: m.PaymentStatus,
		Customer: OrderCustomer{
			Name:        m.CustomerName,
			Phone:       m.CustomerPhone,
			Email:       m.CustomerEmail,
			Fulfillment: m.Fulfillment,
			Address:     m.Address,
		},
		TotalAmount: m.TotalAmount,
		CreatedAt:   m.CreatedAt,
		Chef:        assignmentFromReadModel(m.Chef),
		Delivery:    assignmentFromReadModel(m.Delivery),
		Items:       items,
		History:     history,
	}
}

func assignmentFromReadModel(m *queries.AssignmentResponse) *Assignment {
	if m == nil {
		return nil
	}
	return &Assignment{
		StaffID:    m.StaffID.String(),
		AssignedAt: m.AssignedAt,
		Notes:      m.Notes,
	}
}

func orderSummariesFromReadModel(models []queries.OrderSummaryResponse) []OrderSummary {
	summaries := make([]OrderSummary, len(models))
	for i, m := range models {
		summaries[i] = OrderSummary{
			ID:            m.ID.String(),
			Status:        m.Status,
			PaymentMethod: m.PaymentMethod,
			PaymentStatus: m.PaymentStatus,
			CustomerName:  m.CustomerName,
			Fulfillment:   m.Fulfillment,
			TotalAmount:   m.TotalAmount,
			CreatedAt:     m.CreatedAt,
		}
	}
	return summaries
}
