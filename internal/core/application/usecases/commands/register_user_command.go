package commands

import (
	"errors"

	"gofer/internal/core/domain/model/user"
	"gofer/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsTooShort = errors.New("password must be at least 8 characters")
	ErrNameIsRequired     = errors.New("first and last name are required")
	ErrAdminSelfSignup    = errors.New("admin accounts cannot be self-registered")
)

const minPasswordLength = 8

// RegisterUserCommand represents a signup request for a customer or agent
// account. The plaintext password lives only in this command; the handler
// hashes it before anything is persisted.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	email     string
	password  string
	firstName string
	lastName  string
	phone     string
	role      user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a signup command. Only customer and agent
// roles can be self-registered.
func NewRegisterUserCommand(email, password, firstName, lastName, phone string, role user.Role) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setName(firstName, lastName),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Email returns the signup e-mail address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// FirstName returns the user's first name.
func (c RegisterUserCommand) FirstName() string {
	return c.firstName
}

// LastName returns the user's last name.
func (c RegisterUserCommand) LastName() string {
	return c.lastName
}

// Phone returns the optional contact phone number.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Role returns the requested account role.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordIsTooShort
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setName(firstName, lastName string) error {
	if firstName == "" || lastName == "" {
		return ErrNameIsRequired
	}

	c.firstName = firstName
	c.lastName = lastName
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if role == user.RoleAdmin {
		return ErrAdminSelfSignup
	}

	c.role = role
	return nil
}
