package commands

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gofer/internal/core/domain/model/agent"
	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/user"
	"gofer/internal/core/ports"
)

// ErrEmailAlreadyRegistered is returned when the signup e-mail is taken.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// AuthResult carries the outcome of a successful registration or login.
type AuthResult struct {
	UserID kernel.UUID
	Role   user.Role
	Token  string
}

// RegisterUserCommandHandler creates a new account, hashing the password
// with bcrypt. Agent signups also get an agent profile, unavailable and
// pending background check, in the same transaction.
type RegisterUserCommandHandler struct {
	uowFactory RegisterUoWFactory
	issuer     ports.TokenIssuer
}

// NewRegisterUserCommandHandler creates a handler for account signups.
func NewRegisterUserCommandHandler(uowFactory RegisterUoWFactory, issuer ports.TokenIssuer) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
	}
}

// Handle processes the signup command and returns an access token for the
// new account.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AuthResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	newUser, err := user.NewUser(
		kernel.NewUUID(),
		cmd.Email(), string(hash),
		cmd.FirstName(), cmd.LastName(), cmd.Phone(),
		cmd.Role(),
		time.Now().UTC(),
	)
	if err != nil {
		return AuthResult{}, err
	}

	exists, err := userRepo.ExistsByEmail(ctx, newUser.Email())
	if err != nil {
		return AuthResult{}, err
	}
	if exists {
		return AuthResult{}, ErrEmailAlreadyRegistered
	}

	if err = userRepo.Add(ctx, newUser); err != nil {
		return AuthResult{}, err
	}

	if newUser.Role() == user.RoleAgent {
		profile, err := agent.NewAgent(kernel.NewUUID(), newUser.ID(), newUser.CreatedAt())
		if err != nil {
			return AuthResult{}, err
		}
		if err = uow.AgentRepository().Add(ctx, profile); err != nil {
			return AuthResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return AuthResult{}, err
	}

	token, err := h.issuer.Issue(ports.Identity{UserID: newUser.ID(), Role: newUser.Role()})
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{UserID: newUser.ID(), Role: newUser.Role(), Token: token}, nil
}
