package notification

import (
	"errors"
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/errs"
	"gofer/internal/pkg/guard"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance
// was not created through the NewNotification or RestoreNotification factory
// methods.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Status is the delivery state of a notification.
type Status int

const (
	// StatusUnknown is the zero value, not a valid status.
	StatusUnknown Status = iota
	// StatusPending means the message has not been handed to the provider yet.
	StatusPending
	// StatusSent means the provider accepted the message.
	StatusSent
	// StatusFailed means the last delivery attempt errored.
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		StatusPending: "pending",
		StatusSent:    "sent",
		StatusFailed:  "failed",
	}
}

func getValidStatusStrings() map[string]Status {
	return map[string]Status{
		"pending": StatusPending,
		"sent":    StatusSent,
		"failed":  StatusFailed,
	}
}

// StatusFromString parses a status name into a Status.
func StatusFromString(s string) (Status, error) {
	status, ok := getValidStatusStrings()[s]
	if !ok {
		return StatusUnknown, errs.NewValueIsInvalidError("notification status")
	}
	return status, nil
}

// Validate checks that the Status holds one of the defined values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidError("notification status")
	}
	return nil
}

// String returns the status name, or "unknown" for undefined values.
func (s Status) String() string {
	str, ok := getStatusStrings()[s]
	if !ok {
		return getStatusStrings()[StatusUnknown]
	}
	return str
}

// Notification is an outbound SMS to a user about an order event. Delivery
// failures are retried by a background job until the retry budget runs out.
type Notification struct {
	id      kernel.UUID
	userID  kernel.UUID
	orderID *kernel.UUID

	recipient string
	body      string
	status    Status

	// externalID is the provider's message identifier, set on success
	externalID   string
	errorMessage string
	retryCount   int

	createdAt time.Time
	sentAt    *time.Time

	guard guard.ConstructorGuard
}

// NewNotification creates a pending notification ready for dispatch.
// orderID may be nil for messages not tied to a specific order.
func NewNotification(id, userID kernel.UUID, orderID *kernel.UUID, recipient, body string, createdAt time.Time) (*Notification, error) {
	n := &Notification{
		orderID:   orderID,
		status:    StatusPending,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setUserID(userID),
		n.setRecipient(recipient),
		n.setBody(body),
	); err != nil {
		return nil, err
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// RestoreNotification reconstructs a Notification from persistent storage.
func RestoreNotification(
	id, userID kernel.UUID,
	orderID *kernel.UUID,
	recipient, body string,
	status Status,
	externalID, errorMessage string,
	retryCount int,
	createdAt time.Time,
	sentAt *time.Time,
) (*Notification, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if retryCount < 0 {
		return nil, errs.NewValueIsInvalidError("retryCount")
	}

	n := &Notification{
		orderID:      orderID,
		status:       status,
		externalID:   externalID,
		errorMessage: errorMessage,
		retryCount:   retryCount,
		createdAt:    createdAt,
		sentAt:       sentAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setUserID(userID),
		n.setRecipient(recipient),
		n.setBody(body),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// Validate ensures the Notification instance was properly constructed.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// UserID returns the recipient user's identifier.
func (n *Notification) UserID() kernel.UUID {
	return n.userID
}

// OrderID returns the related order's identifier, or nil.
func (n *Notification) OrderID() *kernel.UUID {
	return n.orderID
}

// Recipient returns the destination phone number.
func (n *Notification) Recipient() string {
	return n.recipient
}

// Body returns the message text.
func (n *Notification) Body() string {
	return n.body
}

// Status returns the delivery state.
func (n *Notification) Status() Status {
	return n.status
}

// ExternalID returns the provider's message identifier, or "".
func (n *Notification) ExternalID() string {
	return n.externalID
}

// ErrorMessage returns the last delivery error, or "".
func (n *Notification) ErrorMessage() string {
	return n.errorMessage
}

// RetryCount returns how many delivery attempts have failed.
func (n *Notification) RetryCount() int {
	return n.retryCount
}

// CreatedAt returns when the notification was created.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// SentAt returns when the provider accepted the message, or nil.
func (n *Notification) SentAt() *time.Time {
	return n.sentAt
}

// MarkSent records provider acceptance of the message.
func (n *Notification) MarkSent(externalID string, at time.Time) error {
	if externalID == "" {
		return errs.NewValueIsRequiredError("externalID")
	}
	n.status = StatusSent
	n.externalID = externalID
	n.errorMessage = ""
	n.sentAt = &at
	return nil
}

// MarkFailed records a delivery failure and counts the attempt against the
// retry budget.
func (n *Notification) MarkFailed(errorMessage string) {
	n.status = StatusFailed
	n.errorMessage = errorMessage
	n.retryCount++
}

// CanRetry reports whether a failed notification is still within the retry
// budget.
func (n *Notification) CanRetry(maxRetries int) bool {
	return n.status == StatusFailed && n.retryCount < maxRetries
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	n.userID = userID
	return nil
}

func (n *Notification) setRecipient(recipient string) error {
	if recipient == "" {
		return errs.NewValueIsRequiredError("recipient")
	}
	n.recipient = recipient
	return nil
}

func (n *Notification) setBody(body string) error {
	if body == "" {
		return errs.NewValueIsRequiredError("body")
	}
	n.body = body
	return nil
}
