package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"gofer/internal/core/application/usecases/commands"
	"gofer/internal/core/domain/model/agent"
	"gofer/internal/core/domain/model/catalog"
	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/order"
	"gofer/internal/core/domain/model/payment"
	"gofer/internal/core/domain/model/user"
	"gofer/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateFrom(ctx context.Context, o *order.Order, from order.Status) error {
	args := m.Called(ctx, o, from)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number order.Number) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByNumber(ctx context.Context, number order.Number) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

type MockAgentRepository struct{ mock.Mock }

func (m *MockAgentRepository) Add(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgentRepository) UpdateIfAvailable(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *MockAgentRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockServiceRepository struct{ mock.Mock }

func (m *MockServiceRepository) Add(ctx context.Context, s *catalog.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRepository) Update(ctx context.Context, s *catalog.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func (m *MockServiceRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Service, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByExternalRef(ctx context.Context, ref string) (*payment.Payment, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindStalePending(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

// MockUoW satisfies every composite unit of work interface in this package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) AgentRepository() ports.AgentRepository {
	args := m.Called()
	return args.Get(0).(ports.AgentRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) ServiceRepository() ports.ServiceRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

type stubAssignmentUoWFactory struct{ uow commands.AssignmentUoW }

func (f stubAssignmentUoWFactory) Create() commands.AssignmentUoW { return f.uow }

type stubCreateOrderUoWFactory struct{ uow commands.CreateOrderUoW }

func (f stubCreateOrderUoWFactory) Create() commands.CreateOrderUoW { return f.uow }

type stubCancelOrderUoWFactory struct{ uow commands.CancelOrderUoW }

func (f stubCancelOrderUoWFactory) Create() commands.CancelOrderUoW { return f.uow }

type stubPaymentUoWFactory struct{ uow commands.PaymentUoW }

func (f stubPaymentUoWFactory) Create() commands.PaymentUoW { return f.uow }

type stubUserUoWFactory struct{ uow commands.UserUoW }

func (f stubUserUoWFactory) Create() commands.UserUoW { return f.uow }

type stubRegisterUoWFactory struct{ uow commands.RegisterUoW }

func (f stubRegisterUoWFactory) Create() commands.RegisterUoW { return f.uow }

type stubAgentUoWFactory struct{ uow commands.AgentUoW }

func (f stubAgentUoWFactory) Create() commands.AgentUoW { return f.uow }

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	args := m.Called(ctx, email, name)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) Authorize(ctx context.Context, customerRef string, amount kernel.Money, description string) (ports.Charge, error) {
	args := m.Called(ctx, customerRef, amount, description)
	return args.Get(0).(ports.Charge), args.Error(1)
}

func (m *MockPaymentGateway) Retrieve(ctx context.Context, intentRef string) (ports.IntentStatus, error) {
	args := m.Called(ctx, intentRef)
	return args.Get(0).(ports.IntentStatus), args.Error(1)
}

func (m *MockPaymentGateway) Reverse(ctx context.Context, chargeRef string, amount kernel.Money) (string, error) {
	args := m.Called(ctx, chargeRef, amount)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) VerifyWebhook(payload []byte, signature string) (ports.WebhookEvent, error) {
	args := m.Called(payload, signature)
	return args.Get(0).(ports.WebhookEvent), args.Error(1)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(identity ports.Identity) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Verify(token string) (ports.Identity, error) {
	args := m.Called(token)
	return args.Get(0).(ports.Identity), args.Error(1)
}

// stubNotifier records which lifecycle events were published.
type stubNotifier struct {
	created, accepted, started, completed, cancelled int
}

func (n *stubNotifier) OrderCreated(context.Context, *order.Order)   { n.created++ }
func (n *stubNotifier) OrderAccepted(context.Context, *order.Order)  { n.accepted++ }
func (n *stubNotifier) OrderStarted(context.Context, *order.Order)   { n.started++ }
func (n *stubNotifier) OrderCompleted(context.Context, *order.Order) { n.completed++ }
func (n *stubNotifier) OrderCancelled(context.Context, *order.Order) { n.cancelled++ }
