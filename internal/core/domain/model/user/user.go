package user

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/errs"
	"gofer/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through the NewUser or RestoreUser factory methods.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrUserIsDeactivated is returned when an operation requires an active
	// account but the account has been deactivated.
	ErrUserIsDeactivated = errors.New("user account is deactivated")
)

// User represents a platform account: identity, credentials and role.
// The password is stored only as a hash produced by the application layer;
// the aggregate never sees the plaintext.
type User struct {
	id    kernel.UUID
	email string
	// passwordHash is the bcrypt digest of the user's password
	passwordHash string
	firstName    string
	lastName     string
	phone        string
	role         Role
	isActive     bool
	// billingRef is the external payment-provider customer reference, set
	// lazily on the user's first successful payment authorization
	billingRef  string
	lastLoginAt *time.Time
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewUser creates an active account with the given role.
func NewUser(
	id kernel.UUID,
	email string,
	passwordHash string,
	firstName, lastName, phone string,
	role Role,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		phone:     phone,
		isActive:  true,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setName(firstName, lastName),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User aggregate from persistent storage.
func RestoreUser(
	id kernel.UUID,
	email string,
	passwordHash string,
	firstName, lastName, phone string,
	role Role,
	isActive bool,
	billingRef string,
	lastLoginAt *time.Time,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		phone:       phone,
		isActive:    isActive,
		billingRef:  billingRef,
		lastLoginAt: lastLoginAt,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setName(firstName, lastName),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the account's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the normalized e-mail address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored password digest.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// FullName returns first and last name joined with a space.
func (u *User) FullName() string {
	return u.firstName + " " + u.lastName
}

// Phone returns the contact phone number, possibly empty.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the account's role.
func (u *User) Role() Role {
	return u.role
}

// IsActive reports whether the account may authenticate and operate.
func (u *User) IsActive() bool {
	return u.isActive
}

// BillingRef returns the payment-provider customer reference, or "".
func (u *User) BillingRef() string {
	return u.billingRef
}

// LastLoginAt returns the last successful login time, or nil.
func (u *User) LastLoginAt() *time.Time {
	return u.lastLoginAt
}

// CreatedAt returns when the account was created.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// RecordLogin marks a successful authentication. Deactivated accounts
// cannot log in.
func (u *User) RecordLogin(at time.Time) error {
	if !u.isActive {
		return ErrUserIsDeactivated
	}
	u.lastLoginAt = &at
	return nil
}

// AttachBillingRef stores the payment-provider customer reference once it
// has been created. An existing reference is never overwritten.
func (u *User) AttachBillingRef(ref string) {
	if u.billingRef != "" {
		return
	}
	u.billingRef = ref
}

// Deactivate disables the account.
func (u *User) Deactivate() {
	u.isActive = false
}

// setID validates and sets the account's unique identifier.
func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

// setEmail normalizes and validates the e-mail address.
func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setName(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	u.firstName = firstName
	u.lastName = lastName
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
