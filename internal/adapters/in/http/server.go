package http

import (
	"errors"
	"net/http"
	"time"

	"sewrica/internal/core/application/usecases/commands"
	"sewrica/internal/core/application/usecases/queries"
	"sewrica/internal/core/domain/model/kernel"
	"sewrica/internal/core/domain/model/order"
	"sewrica/internal/core/domain/model/staff"
	"sewrica/internal/core/domain/services"
	"sewrica/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actingRoleHeader carries the caller's role. Authentication itself happens
// upstream; the service only needs the role for privileged operations.
const actingRoleHeader = "X-Acting-Role"

const adminRole = "admin"

// Server exposes the order fulfillment use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	changeOrderStatusHandler  commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	initiatePaymentHandler    commands.InitiatePaymentCommandHandler
	confirmCardHandler        commands.ConfirmCardPaymentCommandHandler
	recordCashHandler         commands.RecordCashPaymentCommandHandler
	confirmMobileMoneyHandler commands.ConfirmMobileMoneyCommandHandler
	createStaffHandler        commands.CreateStaffCommandHandler
	assignStaffHandler        commands.AssignStaffCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getOrdersHandler         queries.GetOrdersQueryHandler
	getAvailableStaffHandler queries.GetAvailableStaffQueryHandler
	getDailySalesHandler     queries.GetDailySalesReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	initiatePaymentHandler commands.InitiatePaymentCommandHandler,
	confirmCardHandler commands.ConfirmCardPaymentCommandHandler,
	recordCashHandler commands.RecordCashPaymentCommandHandler,
	confirmMobileMoneyHandler commands.ConfirmMobileMoneyCommandHandler,
	createStaffHandler commands.CreateStaffCommandHandler,
	assignStaffHandler commands.AssignStaffCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getAvailableStaffHandler queries.GetAvailableStaffQueryHandler,
	getDailySalesHandler queries.GetDailySalesReportQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		changeOrderStatusHandler:  changeOrderStatusHandler,
		cancelOrderHandler:        cancelOrderHandler,
		initiatePaymentHandler:    initiatePaymentHandler,
		confirmCardHandler:        confirmCardHandler,
		recordCashHandler:         recordCashHandler,
		confirmMobileMoneyHandler: confirmMobileMoneyHandler,
		createStaffHandler:        createStaffHandler,
		assignStaffHandler:        assignStaffHandler,
		getOrderHandler:           getOrderHandler,
		getOrdersHandler:          getOrdersHandler,
		getAvailableStaffHandler:  getAvailableStaffHandler,
		getDailySalesHandler:      getDailySalesHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.PATCH("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/cash-payment", s.RecordCashPayment)
	api.POST("/orders/:id/mobile-money/confirm", s.ConfirmMobileMoney)

	api.POST("/payments/create-intent", s.CreatePaymentIntent)
	api.POST("/payments/confirm-card", s.ConfirmCardPayment)

	api.POST("/staff", s.CreateStaff)
	api.GET("/staff/:role", s.GetAvailableStaff)
	api.POST("/staff/assign-chef/:orderId", s.AssignChef)
	api.POST("/staff/assign-delivery/:orderId", s.AssignDelivery)

	api.GET("/admin/reports/daily", s.GetDailySalesReport)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]order.Item, 0, len(body.Items))
	for _, line := range body.Items {
		menuItemID, err := kernel.UUIDFromString(line.MenuItemID)
		if err != nil {
			return badRequest(ctx, "Invalid menu item id: "+line.MenuItemID)
		}
		unitPrice, err := kernel.NewMoney(line.UnitPrice)
		if err != nil {
			return respondError(ctx, err)
		}
		item, err := order.NewItem(menuItemID, line.Name, line.NameAm, unitPrice, line.Quantity)
		if err != nil {
			return respondError(ctx, err)
		}
		items = append(items, item)
	}

	fulfillment, err := order.ParseFulfillment(body.Customer.Fulfillment)
	if err != nil {
		return badRequest(ctx, "Invalid fulfillment: "+body.Customer.Fulfillment)
	}

	customer, err := order.NewCustomer(
		body.Customer.Name,
		body.Customer.Phone,
		body.Customer.Email,
		fulfillment,
		body.Customer.Address,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	method, err := order.ParsePaymentMethod(body.PaymentMethod)
	if err != nil {
		return badRequest(ctx, "Invalid payment method: "+body.PaymentMethod)
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, items, customer, method)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// GetOrders handles GET /api/v1/orders?status= - lists orders for the
// admin console.
func (s *Server) GetOrders(ctx echo.Context) error {
	if !isAdmin(ctx) {
		return forbidden(ctx)
	}

	var query queries.GetOrdersQuery
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status: "+raw)
		}
		query, err = queries.NewGetOrdersInStatusQuery(status)
		if err != nil {
			return respondError(ctx, err)
		}
	} else {
		query = queries.NewGetOrdersQuery()
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummariesFromReadModel(orders))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status - advances an
// order along its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body ChangeStatus
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+body.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// CancelOrder handles PATCH /api/v1/orders/:id/cancel - cancels an order.
// Once preparation has started only the admin role may cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, isAdmin(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// CreatePaymentIntent handles POST /api/v1/payments/create-intent - starts
// a payment and returns the method-specific handle.
func (s *Server) CreatePaymentIntent(ctx echo.Context) error {
	var body CreateIntent
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewInitiatePaymentCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	handle, err := s.initiatePaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	if handle.Instructions != nil {
		return ctx.JSON(http.StatusOK, PaymentInstructions{
			Recipient: handle.Instructions.Recipient,
			Account:   handle.Instructions.Account,
			DialCode:  handle.Instructions.DialCode,
			Reference: handle.Instructions.Reference,
		})
	}

	return ctx.JSON(http.StatusOK, PaymentIntent{
		PaymentIntentID: handle.IntentID,
		ClientSecret:    handle.ClientSecret,
	})
}

// ConfirmCardPayment handles POST /api/v1/payments/confirm-card - applies
// the processor's charge verdict.
func (s *Server) ConfirmCardPayment(ctx echo.Context) error {
	var body ConfirmCard
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmCardPaymentCommand(orderID, body.PaymentIntentID, body.Succeeded)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.confirmCardHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	response := PaymentResult{PaymentStatus: result.PaymentStatus.String()}
	if result.Record != nil {
		response.Reference = result.Record.ExternalReference()
	}

	return ctx.JSON(http.StatusOK, response)
}

// RecordCashPayment handles POST /api/v1/orders/:id/cash-payment - settles
// a cash order and reports the change due.
func (s *Server) RecordCashPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body CashPayment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	received, err := kernel.NewMoney(body.AmountReceived)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRecordCashPaymentCommand(orderID, received)
	if err != nil {
		return respondError(ctx, err)
	}

	record, err := s.recordCashHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	response := PaymentResult{PaymentStatus: order.PaymentCompleted.String()}
	if amount := record.AmountReceived(); amount != nil {
		value := amount.Amount()
		response.AmountReceived = &value
	}
	if change := record.Change(); change != nil {
		value := change.Amount()
		response.Change = &value
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfirmMobileMoney handles POST /api/v1/orders/:id/mobile-money/confirm -
// records an operator-verified mobile money transfer. Admin only.
func (s *Server) ConfirmMobileMoney(ctx echo.Context) error {
	if !isAdmin(ctx) {
		return forbidden(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body MobileMoneyConfirm
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmMobileMoneyCommand(orderID, body.Reference)
	if err != nil {
		return respondError(ctx, err)
	}

	record, err := s.confirmMobileMoneyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PaymentResult{
		PaymentStatus: order.PaymentCompleted.String(),
		Reference:     record.ExternalReference(),
	})
}

// CreateStaff handles POST /api/v1/staff - registers a staff member.
func (s *Server) CreateStaff(ctx echo.Context) error {
	var body NewStaff
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := staff.ParseRole(body.Role)
	if err != nil {
		return badRequest(ctx, "Invalid role: "+body.Role)
	}

	staffID := kernel.NewUUID()

	cmd, err := commands.NewCreateStaffCommand(staffID, body.Name, role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createStaffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, StaffWorkload{
		ID:   staffID.String(),
		Name: body.Name,
		Role: role.String(),
	})
}

// GetAvailableStaff handles GET /api/v1/staff/:role - lists staff of a role
// with their active order counts, least loaded first.
func (s *Server) GetAvailableStaff(ctx echo.Context) error {
	role, err := staff.ParseRole(ctx.Param("role"))
	if err != nil {
		return badRequest(ctx, "Invalid role: "+ctx.Param("role"))
	}

	query, err := queries.NewGetAvailableStaffQuery(role)
	if err != nil {
		return respondError(ctx, err)
	}

	workloads, err := s.getAvailableStaffHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]StaffWorkload, len(workloads))
	for i, w := range workloads {
		response[i] = StaffWorkload{
			ID:           w.ID.String(),
			Name:         w.Name,
			Role:         w.Role,
			ActiveOrders: w.ActiveCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignChef handles POST /api/v1/staff/assign-chef/:orderId.
func (s *Server) AssignChef(ctx echo.Context) error {
	return s.assignStaff(ctx, staff.RoleChef)
}

// AssignDelivery handles POST /api/v1/staff/assign-delivery/:orderId.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	return s.assignStaff(ctx, staff.RoleDelivery)
}

func (s *Server) assignStaff(ctx echo.Context, slot staff.Role) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body AssignStaff
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	staffID, err := kernel.UUIDFromString(body.StaffID)
	if err != nil {
		return badRequest(ctx, "Invalid staff id")
	}

	cmd, err := commands.NewAssignStaffCommand(orderID, staffID, slot, body.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignStaffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// GetDailySalesReport handles GET /api/v1/admin/reports/daily?date= - the
// admin console's daily revenue snapshot. Defaults to today.
func (s *Server) GetDailySalesReport(ctx echo.Context) error {
	if !isAdmin(ctx) {
		return forbidden(ctx)
	}

	day := time.Now().UTC()
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badRequest(ctx, "Invalid date, expected YYYY-MM-DD")
		}
		day = parsed
	}

	query, err := queries.NewGetDailySalesReportQuery(day)
	if err != nil {
		return respondError(ctx, err)
	}

	report, err := s.getDailySalesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	byMethod := make([]MethodRevenue, len(report.ByMethod))
	for i, m := range report.ByMethod {
		byMethod[i] = MethodRevenue{Method: m.Method, Orders: m.Orders, Revenue: m.Revenue}
	}
	byStatus := make([]StatusCount, len(report.ByStatus))
	for i, c := range report.ByStatus {
		byStatus[i] = StatusCount{Status: c.Status, Count: c.Count}
	}

	return ctx.JSON(http.StatusOK, DailySalesReport{
		Day:          report.Day.Format("2006-01-02"),
		TotalRevenue: report.TotalRevenue,
		ByMethod:     byMethod,
		ByStatus:     byStatus,
	})
}

func (s *Server) respondWithOrder(ctx echo.Context, code int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	readModel, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(code, orderFromReadModel(readModel))
}

func isAdmin(ctx echo.Context) bool {
	return ctx.Request().Header.Get(actingRoleHeader) == adminRole
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func forbidden(ctx echo.Context) error {
	return ctx.JSON(http.StatusForbidden, Error{
		Code:    http.StatusForbidden,
		Message: "This operation requires the admin role",
	})
}

// respondError maps domain and application errors onto HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrCancellationNotPermitted):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrIneligibleOrderState),
		errors.Is(err, order.ErrChefNotAssigned),
		errors.Is(err, order.ErrPaymentNotCompleted),
		errors.Is(err, order.ErrInvalidPaymentTransition):
		code = http.StatusConflict
	case errors.Is(err, services.ErrPaymentProcessor):
		code = http.StatusBadGateway
	case errors.Is(err, services.ErrInsufficientAmount),
		errors.Is(err, services.ErrRoleMismatch),
		errors.Is(err, services.ErrUnsupportedPaymentMethod),
		errors.Is(err, commands.ErrCancelViaStatusChange),
		errors.Is(err, commands.ErrItemsAreRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
