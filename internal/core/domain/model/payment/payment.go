package payment

import (
	"errors"
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/errs"
	"gofer/internal/pkg/guard"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was not
	// created through the NewPayment or RestorePayment factory methods.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

	// ErrNoChargeRecorded is returned when a refund is requested for a
	// payment that never recorded a provider charge reference.
	ErrNoChargeRecorded = errors.New("payment has no charge recorded")

	// ErrRefundExceedsCharge is returned when a partial refund asks for
	// more than the captured amount.
	ErrRefundExceedsCharge = errors.New("refund amount exceeds the captured charge")
)

// Payment tracks one charge attempt for an order against the external
// payment provider. externalRef is the provider's intent identifier;
// chargeRef is set once the charge is captured and is required for refunds.
type Payment struct {
	id      kernel.UUID
	orderID kernel.UUID
	amount  kernel.Money
	status  Status

	// externalRef is the provider's payment intent identifier
	externalRef string
	// chargeRef is the provider's charge identifier, set on success
	chargeRef  string
	methodType string
	// last4 are the final digits of the card used, for display only
	last4         string
	failureReason string

	refundAmount kernel.Money
	refundReason string
	refundedAt   *time.Time

	createdAt   time.Time
	processedAt *time.Time

	guard guard.ConstructorGuard
}

// NewPayment creates a payment record in StatusPending: the record exists
// from the moment the provider intent is opened, before any decision is
// known. The provider's webhook moves it on from there.
func NewPayment(id, orderID kernel.UUID, amount kernel.Money, externalRef string, createdAt time.Time) (*Payment, error) {
	p := &Payment{
		amount:    amount,
		status:    StatusPending,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setExternalRef(externalRef),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a Payment from persistent storage.
func RestorePayment(
	id, orderID kernel.UUID,
	amount kernel.Money,
	status Status,
	externalRef, chargeRef, methodType, last4, failureReason string,
	refundAmount kernel.Money,
	refundReason string,
	refundedAt *time.Time,
	createdAt time.Time,
	processedAt *time.Time,
) (*Payment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	p := &Payment{
		amount:        amount,
		status:        status,
		chargeRef:     chargeRef,
		methodType:    methodType,
		last4:         last4,
		failureReason: failureReason,
		refundAmount:  refundAmount,
		refundReason:  refundReason,
		refundedAt:    refundedAt,
		createdAt:     createdAt,
		processedAt:   processedAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setExternalRef(externalRef),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the payment record's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the paid order's identifier.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the charged amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Status returns the payment's lifecycle state.
func (p *Payment) Status() Status {
	return p.status
}

// ExternalRef returns the provider's payment intent identifier.
func (p *Payment) ExternalRef() string {
	return p.externalRef
}

// ChargeRef returns the provider's charge identifier, or "".
func (p *Payment) ChargeRef() string {
	return p.chargeRef
}

// MethodType returns the payment method kind reported by the provider.
func (p *Payment) MethodType() string {
	return p.methodType
}

// Last4 returns the final card digits reported by the provider.
func (p *Payment) Last4() string {
	return p.last4
}

// FailureReason returns the provider's decline message, or "".
func (p *Payment) FailureReason() string {
	return p.failureReason
}

// RefundAmount returns the refunded amount, zero when never refunded.
func (p *Payment) RefundAmount() kernel.Money {
	return p.refundAmount
}

// RefundReason returns the recorded refund reason, or "".
func (p *Payment) RefundReason() string {
	return p.refundReason
}

// RefundedAt returns when the charge was reversed, or nil.
func (p *Payment) RefundedAt() *time.Time {
	return p.refundedAt
}

// CreatedAt returns when the payment record was created.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// ProcessedAt returns when the provider decision was recorded, or nil.
func (p *Payment) ProcessedAt() *time.Time {
	return p.processedAt
}

// MarkSucceeded records a captured charge.
func (p *Payment) MarkSucceeded(chargeRef, methodType, last4 string, at time.Time) error {
	status, err := p.status.succeed()
	if err != nil {
		return err
	}
	if chargeRef == "" {
		return errs.NewValueIsRequiredError("chargeRef")
	}

	p.status = status
	p.chargeRef = chargeRef
	p.methodType = methodType
	p.last4 = last4
	p.failureReason = ""
	p.processedAt = &at
	return nil
}

// MarkFailed records a provider decline. The payment may still succeed on a
// later retry reported by the provider.
func (p *Payment) MarkFailed(reason string, at time.Time) error {
	status, err := p.status.fail()
	if err != nil {
		return err
	}

	p.status = status
	p.failureReason = reason
	p.processedAt = &at
	return nil
}

// MarkRefunded records the reversal of a captured charge. A zero amount
// means a full refund.
func (p *Payment) MarkRefunded(amount kernel.Money, reason string, at time.Time) error {
	if p.chargeRef == "" {
		return ErrNoChargeRecorded
	}
	if amount.IsZero() {
		amount = p.amount
	}
	if amount.Cents() > p.amount.Cents() {
		return ErrRefundExceedsCharge
	}
	status, err := p.status.refund()
	if err != nil {
		return err
	}

	p.status = status
	p.refundAmount = amount
	p.refundReason = reason
	p.refundedAt = &at
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setExternalRef(ref string) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("externalRef")
	}
	p.externalRef = ref
	return nil
}
