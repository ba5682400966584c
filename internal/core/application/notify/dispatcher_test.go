package notify_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gofer/internal/core/application/notify"
	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/notification"
	"gofer/internal/core/domain/model/order"
	"gofer/internal/core/domain/model/user"
	"gofer/internal/core/ports"
)

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetAllRetryable(ctx context.Context, maxRetries int) ([]*notification.Notification, error) {
	args := m.Called(ctx, maxRetries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
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

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type stubUoWFactory struct{ uow notify.UoW }

func (f stubUoWFactory) Create() notify.UoW { return f.uow }

type MockMessagingGateway struct{ mock.Mock }

func (m *MockMessagingGateway) Send(ctx context.Context, to, body string) (string, error) {
	args := m.Called(ctx, to, body)
	return args.String(0), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testOrderAndCustomer(t *testing.T, phone string) (*order.Order, *user.User) {
	t.Helper()
	customer, err := user.NewUser(kernel.NewUUID(), "casey@example.com", "hash-not-checked-here",
		"Casey", "Kim", phone, user.RoleCustomer, time.Now().UTC())
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), order.GenerateNumber(), customer.ID(), kernel.NewUUID(),
		"weekly groceries", order.Details{}, kernel.MustMoney(1500), time.Now().UTC())
	require.NoError(t, err)
	return o, customer
}

func TestDispatcher_OrderAccepted_PersistedBeforeSend(t *testing.T) {
	ctx := t.Context()
	o, customer := testOrderAndCustomer(t, "+15550001111")

	notificationRepo := new(MockNotificationRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	gateway := new(MockMessagingGateway)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	userRepo.On("Get", ctx, o.CustomerID()).Return(customer, nil).Once()
	mock.InOrder(
		notificationRepo.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
			return n.Status() == notification.StatusPending
		})).Return(nil).Once(),
		gateway.On("Send", mock.Anything, "+15550001111", mock.AnythingOfType("string")).
			Return("SM123", nil).Once(),
		notificationRepo.On("Update", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
			return n.Status() == notification.StatusSent && n.ExternalID() == "SM123"
		})).Return(nil).Once(),
	)

	d := notify.NewDispatcher(stubUoWFactory{uow}, gateway, testLogger())
	d.OrderAccepted(ctx, o)

	notificationRepo.AssertExpectations(t)
	gateway.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDispatcher_SendFailureIsRecordedForRetry(t *testing.T) {
	ctx := t.Context()
	o, customer := testOrderAndCustomer(t, "+15550001111")

	notificationRepo := new(MockNotificationRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	gateway := new(MockMessagingGateway)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	userRepo.On("Get", ctx, o.CustomerID()).Return(customer, nil).Once()
	notificationRepo.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.Status() == notification.StatusPending
	})).Return(nil).Once()
	gateway.On("Send", mock.Anything, "+15550001111", mock.AnythingOfType("string")).
		Return("", errors.New("provider timeout")).Once()
	notificationRepo.On("Update", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.Status() == notification.StatusFailed && n.RetryCount() == 1
	})).Return(nil).Once()

	d := notify.NewDispatcher(stubUoWFactory{uow}, gateway, testLogger())
	d.OrderCreated(ctx, o)

	notificationRepo.AssertExpectations(t)
}

func TestDispatcher_NoPhoneSkipsQuietly(t *testing.T) {
	ctx := t.Context()
	o, customer := testOrderAndCustomer(t, "")

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	gateway := new(MockMessagingGateway)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("Rollback", ctx).Return(nil).Once()
	userRepo.On("Get", ctx, o.CustomerID()).Return(customer, nil).Once()

	d := notify.NewDispatcher(stubUoWFactory{uow}, gateway, testLogger())
	d.OrderCompleted(ctx, o)

	gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func failedNotification(t *testing.T, retryCount int) *notification.Notification {
	t.Helper()
	orderID := kernel.NewUUID()
	n, err := notification.RestoreNotification(
		kernel.NewUUID(), kernel.NewUUID(), &orderID,
		"+15550001111", "Your order GO-AAA111 has been placed!",
		notification.StatusFailed, "", "provider timeout", retryCount,
		time.Now().UTC(), nil,
	)
	require.NoError(t, err)
	return n
}

func TestDispatcher_RetryFailed_ResendsAndPersistsOutcome(t *testing.T) {
	ctx := t.Context()

	recovered := failedNotification(t, 1)
	stillBroken := failedNotification(t, 2)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)
	gateway := new(MockMessagingGateway)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	notificationRepo.On("GetAllRetryable", ctx, 3).
		Return([]*notification.Notification{recovered, stillBroken}, nil).Once()
	gateway.On("Send", mock.Anything, recovered.Recipient(), recovered.Body()).
		Return("SM456", nil).Once()
	gateway.On("Send", mock.Anything, stillBroken.Recipient(), stillBroken.Body()).
		Return("", errors.New("provider timeout")).Once()
	notificationRepo.On("Update", ctx, recovered).Return(nil).Once()
	notificationRepo.On("Update", ctx, stillBroken).Return(nil).Once()

	d := notify.NewDispatcher(stubUoWFactory{uow}, gateway, testLogger())
	sent, err := d.RetryFailed(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, sent)
	assert.Equal(t, notification.StatusSent, recovered.Status())
	assert.Equal(t, "SM456", recovered.ExternalID())
	assert.Equal(t, notification.StatusFailed, stillBroken.Status())
	assert.Equal(t, 3, stillBroken.RetryCount())

	notificationRepo.AssertExpectations(t)
	gateway.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDispatcher_RetryFailed_NothingToRetry(t *testing.T) {
	ctx := t.Context()

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)
	gateway := new(MockMessagingGateway)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("NotificationRepository").Return(notificationRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	notificationRepo.On("GetAllRetryable", ctx, 3).
		Return([]*notification.Notification{}, nil).Once()

	d := notify.NewDispatcher(stubUoWFactory{uow}, gateway, testLogger())
	sent, err := d.RetryFailed(ctx, 3)
	require.NoError(t, err)

	assert.Zero(t, sent)
	gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}
