package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gofer/internal/core/application/usecases/commands"
	"gofer/internal/core/domain/model/agent"
	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/order"
	"gofer/internal/core/ports"
)

func pendingPaidOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), order.GenerateNumber(), kernel.NewUUID(), kernel.NewUUID(),
		"pick up dry cleaning", order.Details{}, kernel.MustMoney(1500), time.Now().UTC(),
	)
	require.NoError(t, err)
	o.ConfirmPayment()
	return o
}

func approvedAvailableAgent(t *testing.T, userID kernel.UUID) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(kernel.NewUUID(), userID, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, a.ReviewBackgroundCheck(agent.BackgroundCheckApproved, time.Now().UTC()))
	a.SetAvailability(true)
	return a
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	agentUserID := kernel.NewUUID()
	claimed := pendingPaidOrder(t)
	claimant := approvedAvailableAgent(t, agentUserID)

	cmd, err := commands.NewAcceptOrderCommand(claimed.ID(), agentUserID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		orderRepo.On("Get", ctx, claimed.ID()).Return(claimed, nil).Once(),
		agentRepo.On("GetByUserID", ctx, agentUserID).Return(claimant, nil).Once(),
		orderRepo.On("UpdateFrom", ctx, claimed, order.Pending).Return(nil).Once(),
		agentRepo.On("UpdateIfAvailable", ctx, claimant).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := &stubNotifier{}
	handler := commands.NewAcceptOrderCommandHandler(stubAssignmentUoWFactory{uow}, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Accepted, claimed.Status())
	require.NotNil(t, claimed.AgentID())
	assert.True(t, claimed.AgentID().IsEqual(claimant.ID()))
	assert.False(t, claimant.IsAvailable())
	assert.Equal(t, 1, claimant.TotalJobs())
	assert.Equal(t, 1, notifier.accepted)
	orderRepo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_ConcurrentClaim(t *testing.T) {
	ctx := t.Context()
	agentUserID := kernel.NewUUID()
	claimed := pendingPaidOrder(t)
	claimant := approvedAvailableAgent(t, agentUserID)

	cmd, err := commands.NewAcceptOrderCommand(claimed.ID(), agentUserID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		orderRepo.On("Get", ctx, claimed.ID()).Return(claimed, nil).Once(),
		agentRepo.On("GetByUserID", ctx, agentUserID).Return(claimant, nil).Once(),
		orderRepo.On("UpdateFrom", ctx, claimed, order.Pending).Return(ports.ErrConcurrentUpdate).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := &stubNotifier{}
	handler := commands.NewAcceptOrderCommandHandler(stubAssignmentUoWFactory{uow}, notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAssignmentConflict)
	assert.Zero(t, notifier.accepted)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAcceptOrderCommandHandler_Handle_AgentAlreadyBusy(t *testing.T) {
	ctx := t.Context()
	agentUserID := kernel.NewUUID()
	claimed := pendingPaidOrder(t)
	claimant := approvedAvailableAgent(t, agentUserID)

	cmd, err := commands.NewAcceptOrderCommand(claimed.ID(), agentUserID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		orderRepo.On("Get", ctx, claimed.ID()).Return(claimed, nil).Once(),
		agentRepo.On("GetByUserID", ctx, agentUserID).Return(claimant, nil).Once(),
		orderRepo.On("UpdateFrom", ctx, claimed, order.Pending).Return(nil).Once(),
		agentRepo.On("UpdateIfAvailable", ctx, claimant).Return(ports.ErrConcurrentUpdate).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAcceptOrderCommandHandler(stubAssignmentUoWFactory{uow}, &stubNotifier{})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAssignmentConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAcceptOrderCommandHandler_Handle_UnpaidOrder(t *testing.T) {
	ctx := t.Context()
	agentUserID := kernel.NewUUID()
	unpaid, err := order.NewOrder(
		kernel.NewUUID(), order.GenerateNumber(), kernel.NewUUID(), kernel.NewUUID(),
		"walk the dog", order.Details{}, kernel.MustMoney(2000), time.Now().UTC(),
	)
	require.NoError(t, err)
	claimant := approvedAvailableAgent(t, agentUserID)

	cmd, err := commands.NewAcceptOrderCommand(unpaid.ID(), agentUserID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		orderRepo.On("Get", ctx, unpaid.ID()).Return(unpaid, nil).Once(),
		agentRepo.On("GetByUserID", ctx, agentUserID).Return(claimant, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAcceptOrderCommandHandler(stubAssignmentUoWFactory{uow}, &stubNotifier{})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrPaymentNotConfirmed)
}

func TestAcceptOrderCommandHandler_Handle_UnapprovedAgent(t *testing.T) {
	ctx := t.Context()
	agentUserID := kernel.NewUUID()
	claimed := pendingPaidOrder(t)
	unvetted, err := agent.NewAgent(kernel.NewUUID(), agentUserID, time.Now().UTC())
	require.NoError(t, err)
	unvetted.SetAvailability(true)

	cmd, err := commands.NewAcceptOrderCommand(claimed.ID(), agentUserID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		orderRepo.On("Get", ctx, claimed.ID()).Return(claimed, nil).Once(),
		agentRepo.On("GetByUserID", ctx, agentUserID).Return(unvetted, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAcceptOrderCommandHandler(stubAssignmentUoWFactory{uow}, &stubNotifier{})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAgentNotApproved)
}

func TestAcceptOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AcceptOrderCommand{} // not constructed properly

	handler := commands.NewAcceptOrderCommandHandler(stubAssignmentUoWFactory{nil}, &stubNotifier{})
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAcceptOrderCommandIsNotConstructed)
}
