package cmd

import (
	"log/slog"

	"gofer/internal/adapters/in/http"
	"gofer/internal/adapters/out/payments"
	"gofer/internal/adapters/out/postgres"
	"gofer/internal/adapters/out/sms"
	"gofer/internal/adapters/out/tokens"
	"gofer/internal/core/application/notify"
	"gofer/internal/core/application/usecases/commands"
	"gofer/internal/core/application/usecases/queries"
	"gofer/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	tokenIssuer      *tokens.JWTIssuer
	paymentGateway   *payments.Client
	messagingGateway *sms.Client
	notifier         *notify.Dispatcher
	logger           *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	tokenIssuer, err := tokens.NewJWTIssuer(configs.JWTSecret)
	if err != nil {
		return CompositionRoot{}, err
	}

	paymentGateway, err := payments.NewClient(
		configs.PaymentAPIKey, configs.PaymentWebhookSecret, configs.PaymentBaseURL)
	if err != nil {
		return CompositionRoot{}, err
	}

	messagingGateway, err := sms.NewClient(
		configs.SMSAccountSID, configs.SMSAuthToken, configs.SMSFromNumber, configs.SMSBaseURL)
	if err != nil {
		return CompositionRoot{}, err
	}

	uowFactory := *postgres.NewGormUnitOfWorkFactory(gormDB)

	notifier := notify.NewDispatcher(
		FuncNotifyUoWFactory(func() notify.UoW {
			return uowFactory.Create()
		}),
		messagingGateway,
		logger,
	)

	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       uowFactory,
		tokenIssuer:      tokenIssuer,
		paymentGateway:   paymentGateway,
		messagingGateway: messagingGateway,
		notifier:         notifier,
		logger:           logger,
	}, nil
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.RegisterUoWFactory = FuncRegisterUoWFactory(func() commands.RegisterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.tokenIssuer)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoginCommandHandler(f, c.tokenIssuer)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.paymentGateway, c.notifier)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.CancelOrderUoWFactory = FuncCancelOrderUoWFactory(func() commands.CancelOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.paymentGateway, c.notifier)
}

func (c *CompositionRoot) CreateSetAgentAvailabilityCommandHandler() commands.SetAgentAvailabilityCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetAgentAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateAgentProfileCommandHandler() commands.UpdateAgentProfileCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAgentProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewBackgroundCheckCommandHandler() commands.ReviewBackgroundCheckCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewBackgroundCheckCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcilePaymentCommandHandler() commands.ReconcilePaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcilePaymentCommandHandler(f, c.paymentGateway)
}

func (c *CompositionRoot) CreateRefundPaymentCommandHandler() commands.RefundPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefundPaymentCommandHandler(f, c.paymentGateway)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableOrdersQueryHandler() queries.GetAvailableOrdersQueryHandler {
	return queries.NewGetAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentOrdersQueryHandler() queries.GetAgentOrdersQueryHandler {
	return queries.NewGetAgentOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentStatsQueryHandler() queries.GetAgentStatsQueryHandler {
	return queries.NewGetAgentStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentProfileQueryHandler() queries.GetAgentProfileQueryHandler {
	return queries.NewGetAgentProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAgentsQueryHandler() queries.ListAgentsQueryHandler {
	return queries.NewListAgentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		RegisterUser:          c.CreateRegisterUserCommandHandler(),
		Login:                 c.CreateLoginCommandHandler(),
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		CancelOrder:           c.CreateCancelOrderCommandHandler(),
		AcceptOrder:           c.CreateAcceptOrderCommandHandler(),
		StartOrder:            c.CreateStartOrderCommandHandler(),
		CompleteOrder:         c.CreateCompleteOrderCommandHandler(),
		SetAgentAvailability:  c.CreateSetAgentAvailabilityCommandHandler(),
		UpdateAgentProfile:    c.CreateUpdateAgentProfileCommandHandler(),
		ReviewBackgroundCheck: c.CreateReviewBackgroundCheckCommandHandler(),
		ReconcilePayment:      c.CreateReconcilePaymentCommandHandler(),
		RefundPayment:         c.CreateRefundPaymentCommandHandler(),
		GetCatalog:            c.CreateGetCatalogQueryHandler(),
		GetOrder:              c.CreateGetOrderQueryHandler(),
		GetAvailableOrders:    c.CreateGetAvailableOrdersQueryHandler(),
		GetCustomerOrders:     c.CreateGetCustomerOrdersQueryHandler(),
		GetAgentOrders:        c.CreateGetAgentOrdersQueryHandler(),
		GetAgentStats:         c.CreateGetAgentStatsQueryHandler(),
		GetAgentProfile:       c.CreateGetAgentProfileQueryHandler(),
		ListAgents:            c.CreateListAgentsQueryHandler(),
	}, c.tokenIssuer)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.notifier, c.CreateReconcilePaymentCommandHandler(), c.logger)
}

type FuncRegisterUoWFactory func() commands.RegisterUoW

func (f FuncRegisterUoWFactory) Create() commands.RegisterUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncCancelOrderUoWFactory func() commands.CancelOrderUoW

func (f FuncCancelOrderUoWFactory) Create() commands.CancelOrderUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncNotifyUoWFactory func() notify.UoW

func (f FuncNotifyUoWFactory) Create() notify.UoW {
	return f()
}
