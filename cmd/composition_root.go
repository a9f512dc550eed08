package cmd

import (
	"sewrica/internal/adapters/out/postgres"
	"sewrica/internal/core/application/usecases/commands"
	"sewrica/internal/core/application/usecases/queries"
	"sewrica/internal/core/domain/services"
	"sewrica/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	strategies services.PaymentStrategySet

	requirePaymentBeforeDelivery bool
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	processor services.CardProcessor,
) (CompositionRoot, error) {
	strategies, err := services.NewPaymentStrategySet(processor, services.MobileMoneyConfig{
		Recipient: config.MobileMoneyRecipient,
		Account:   config.MobileMoneyAccount,
		DialCode:  config.MobileMoneyDialCode,
	})
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:                       gormDB,
		uowFactory:                   *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:                    publisher,
		strategies:                   strategies,
		requirePaymentBeforeDelivery: config.RequirePaymentBeforeDelivery,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(
		c.orderUoWFactory(), c.publisher, c.requirePaymentBeforeDelivery)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateInitiatePaymentCommandHandler() commands.InitiatePaymentCommandHandler {
	return commands.NewInitiatePaymentCommandHandler(c.orderUoWFactory(), c.strategies)
}

func (c *CompositionRoot) CreateConfirmCardPaymentCommandHandler() commands.ConfirmCardPaymentCommandHandler {
	return commands.NewConfirmCardPaymentCommandHandler(c.orderPaymentUoWFactory(), c.strategies)
}

func (c *CompositionRoot) CreateRecordCashPaymentCommandHandler() commands.RecordCashPaymentCommandHandler {
	return commands.NewRecordCashPaymentCommandHandler(c.orderPaymentUoWFactory(), c.strategies)
}

func (c *CompositionRoot) CreateConfirmMobileMoneyCommandHandler() commands.ConfirmMobileMoneyCommandHandler {
	return commands.NewConfirmMobileMoneyCommandHandler(c.orderPaymentUoWFactory(), c.strategies)
}

func (c *CompositionRoot) CreateCreateStaffCommandHandler() commands.CreateStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignStaffCommandHandler() commands.AssignStaffCommandHandler {
	var f commands.OrderStaffUoWFactory = FuncOrderStaffUoWFactory(func() commands.OrderStaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignStaffCommandHandler(f, services.NewStaffDispatcher())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableStaffQueryHandler() queries.GetAvailableStaffQueryHandler {
	return queries.NewGetAvailableStaffQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDailySalesReportQueryHandler() queries.GetDailySalesReportQueryHandler {
	return queries.NewGetDailySalesReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderPaymentUoWFactory() commands.OrderPaymentUoWFactory {
	return FuncOrderPaymentUoWFactory(func() commands.OrderPaymentUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncOrderStaffUoWFactory func() commands.OrderStaffUoW

func (f FuncOrderStaffUoWFactory) Create() commands.OrderStaffUoW {
	return f()
}

type FuncOrderPaymentUoWFactory func() commands.OrderPaymentUoW

func (f FuncOrderPaymentUoWFactory) Create() commands.OrderPaymentUoW {
	return f()
}
