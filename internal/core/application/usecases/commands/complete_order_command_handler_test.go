package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gofer/internal/core/application/usecases/commands"
	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/order"
)

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	agentUserID := kernel.NewUUID()
	executor := approvedAvailableAgent(t, agentUserID)
	inProgress := pendingPaidOrder(t)
	require.NoError(t, inProgress.Accept(executor.ID(), time.Now().UTC()))
	require.NoError(t, executor.MarkBusy())
	require.NoError(t, inProgress.Start(time.Now().UTC()))

	cmd, err := commands.NewCompleteOrderCommand(inProgress.ID(), agentUserID,
		"left groceries at the door",
		[]string{"https://cdn.example.com/done.jpg"},
		[]string{"https://cdn.example.com/receipt.jpg"},
		500)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		orderRepo.On("Get", ctx, inProgress.ID()).Return(inProgress, nil).Once(),
		agentRepo.On("GetByUserID", ctx, agentUserID).Return(executor, nil).Once(),
		orderRepo.On("UpdateFrom", ctx, inProgress, order.InProgress).Return(nil).Once(),
		agentRepo.On("Update", ctx, executor).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := &stubNotifier{}
	handler := commands.NewCompleteOrderCommandHandler(stubAssignmentUoWFactory{uow}, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, inProgress.Status())
	assert.True(t, inProgress.TotalAmount().IsEqual(kernel.MustMoney(2000)), "1500 fee + 500 costs")
	assert.Equal(t, 1, executor.CompletedJobs())
	assert.True(t, executor.TotalEarnings().IsEqual(kernel.MustMoney(1500)), "agent earns the fee, not the costs")
	assert.True(t, executor.IsAvailable())
	assert.Equal(t, 1, notifier.completed)
	orderRepo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_WrongAgent(t *testing.T) {
	ctx := t.Context()
	boundAgent := approvedAvailableAgent(t, kernel.NewUUID())
	inProgress := pendingPaidOrder(t)
	require.NoError(t, inProgress.Accept(boundAgent.ID(), time.Now().UTC()))
	require.NoError(t, inProgress.Start(time.Now().UTC()))

	otherUserID := kernel.NewUUID()
	other := approvedAvailableAgent(t, otherUserID)

	cmd, err := commands.NewCompleteOrderCommand(inProgress.ID(), otherUserID, "", nil, nil, 0)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		orderRepo.On("Get", ctx, inProgress.ID()).Return(inProgress, nil).Once(),
		agentRepo.On("GetByUserID", ctx, otherUserID).Return(other, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCompleteOrderCommandHandler(stubAssignmentUoWFactory{uow}, &stubNotifier{})
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNotOrderAgent)
	assert.Equal(t, order.InProgress, inProgress.Status())
}

func TestCompleteOrderCommand_RejectsNegativeCosts(t *testing.T) {
	_, err := commands.NewCompleteOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "", nil, nil, -100)
	require.ErrorIs(t, err, commands.ErrAdditionalCostsAreInvalid)
}
