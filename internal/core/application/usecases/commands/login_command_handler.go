package commands

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gofer/internal/core/ports"
	"gofer/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for unknown e-mails and wrong
// passwords alike, so callers cannot tell which accounts exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

// LoginCommandHandler authenticates an account and records the login time.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	issuer     ports.TokenIssuer
}

// NewLoginCommandHandler creates a handler for authentication attempts.
func NewLoginCommandHandler(uowFactory UserUoWFactory, issuer ports.TokenIssuer) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
	}
}

// Handle processes the authentication attempt and returns an access token.
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AuthResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthResult{}, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash()), []byte(cmd.Password())); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	if err = account.RecordLogin(time.Now().UTC()); err != nil {
		return AuthResult{}, err
	}

	if err = uow.UserRepository().Update(ctx, account); err != nil {
		return AuthResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AuthResult{}, err
	}

	token, err := h.issuer.Issue(ports.Identity{UserID: account.ID(), Role: account.Role()})
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{UserID: account.ID(), Role: account.Role(), Token: token}, nil
}
