package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"

	"gofer/internal/core/application/usecases/commands"
	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/user"
	"gofer/internal/pkg/errs"
)

func registeredUser(t *testing.T, password string) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u, err := user.NewUser(kernel.NewUUID(), "casey@example.com", string(hash),
		"Casey", "Kim", "", user.RoleCustomer, time.Now().UTC())
	require.NoError(t, err)
	return u
}

func TestLoginCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	account := registeredUser(t, "s3cret-pass")
	cmd, err := commands.NewLoginCommand("casey@example.com", "s3cret-pass")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	issuer := new(MockTokenIssuer)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	userRepo.On("GetByEmail", ctx, "casey@example.com").Return(account, nil).Once()
	userRepo.On("Update", ctx, account).Return(nil).Once()
	issuer.On("Issue", mock.AnythingOfType("ports.Identity")).Return("token-123", nil).Once()

	handler := commands.NewLoginCommandHandler(stubUserUoWFactory{uow}, issuer)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "token-123", result.Token)
	assert.True(t, result.UserID.IsEqual(account.ID()))
	assert.NotNil(t, account.LastLoginAt())
	userRepo.AssertExpectations(t)
}

func TestLoginCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	account := registeredUser(t, "s3cret-pass")
	cmd, err := commands.NewLoginCommand("casey@example.com", "wrong-pass")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("Rollback", ctx).Return(nil).Once()
	userRepo.On("GetByEmail", ctx, "casey@example.com").Return(account, nil).Once()

	handler := commands.NewLoginCommandHandler(stubUserUoWFactory{uow}, new(MockTokenIssuer))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
}

func TestLoginCommandHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewLoginCommand("nobody@example.com", "whatever-pass")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("Rollback", ctx).Return(nil).Once()
	userRepo.On("GetByEmail", ctx, "nobody@example.com").
		Return(nil, errs.NewObjectNotFoundError("email", "nobody@example.com")).Once()

	handler := commands.NewLoginCommandHandler(stubUserUoWFactory{uow}, new(MockTokenIssuer))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrInvalidCredentials,
		"unknown email and wrong password are indistinguishable")
}
