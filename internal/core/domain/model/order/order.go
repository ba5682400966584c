package order

import (
	"errors"
	"time"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDescriptionIsRequired is returned when creating an order without a task description.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")

	// ErrPaymentNotConfirmed is returned when accepting an order whose payment
	// has not been confirmed yet. Agents must never be bound to unpaid work.
	ErrPaymentNotConfirmed = errors.New("order payment has not been confirmed")
)

// Details carries the optional free-form attributes of an order request.
type Details struct {
	PickupAddress       string
	DeliveryAddress     string
	SpecialInstructions string
}

// CompletionReport carries the evidence an agent submits when finishing an order.
type CompletionReport struct {
	Notes            string
	CompletionPhotos []string
	ReceiptPhotos    []string
	AdditionalCosts  kernel.Money
}

// Order represents a customer service request and its fulfillment lifecycle.
// It is the aggregate root owning the status state machine; Agent and Payment
// records reference it but never mutate it directly.
//
// Order maintains these invariants:
//   - Status transitions follow the state machine in Status
//   - An order never has an agent bound while status is Pending
//   - At most one of completedAt/cancelledAt is ever set
//   - serviceFee is snapshotted at creation and immutable thereafter
//   - totalAmount always equals serviceFee + additionalCosts
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the human-readable order number, unique across all orders
	number Number

	// customerID is the requesting customer's user ID
	customerID kernel.UUID

	// agentID is the bound agent's ID (nil until accepted)
	agentID *kernel.UUID

	// serviceID references the catalog service the customer requested
	serviceID kernel.UUID

	description string
	details     Details

	// serviceFee is the base price snapshotted from the catalog at creation
	serviceFee kernel.Money

	// additionalCosts are pass-through expenses recorded at completion
	additionalCosts kernel.Money

	// totalAmount is serviceFee + additionalCosts
	totalAmount kernel.Money

	status Status

	// paymentConfirmed becomes true once the gateway reports a successful
	// charge; it gates visibility to the assignment arbiter
	paymentConfirmed bool

	completionNotes  string
	completionPhotos []string
	receiptPhotos    []string

	cancellationReason string

	createdAt   time.Time
	acceptedAt  *time.Time
	startedAt   *time.Time
	completedAt *time.Time
	cancelledAt *time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with an unconfirmed payment.
// The service fee is the caller-supplied snapshot of the catalog base price;
// the total amount starts equal to the fee and is recomputed at completion.
//
// Returns a validation error if any identifier is invalid or the description
// is empty.
func NewOrder(
	id kernel.UUID,
	number Number,
	customerID kernel.UUID,
	serviceID kernel.UUID,
	description string,
	details Details,
	serviceFee kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setServiceID(serviceID),
		o.setDescription(description),
	); err != nil {
		return nil, err
	}

	o.details = details
	o.serviceFee = serviceFee
	o.totalAmount = serviceFee
	o.createdAt = createdAt

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts the full field set and verifies cross-field
// consistency: a valid status, agent presence matching the status, and at
// most one terminal timestamp.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	customerID kernel.UUID,
	agentID *kernel.UUID,
	serviceID kernel.UUID,
	description string,
	details Details,
	serviceFee kernel.Money,
	additionalCosts kernel.Money,
	totalAmount kernel.Money,
	status Status,
	paymentConfirmed bool,
	completionNotes string,
	completionPhotos []string,
	receiptPhotos []string,
	cancellationReason string,
	createdAt time.Time,
	acceptedAt, startedAt, completedAt, cancelledAt *time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveAgent(agentID != nil); err != nil {
		return nil, err
	}
	if completedAt != nil && cancelledAt != nil {
		return nil, errs.NewValueIsInvalidError("order cannot be both completed and cancelled")
	}

	o := &Order{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setServiceID(serviceID),
		o.setDescription(description),
	); err != nil {
		return nil, err
	}

	o.agentID = agentID
	o.details = details
	o.serviceFee = serviceFee
	o.additionalCosts = additionalCosts
	o.totalAmount = totalAmount
	o.paymentConfirmed = paymentConfirmed
	o.completionNotes = completionNotes
	o.completionPhotos = completionPhotos
	o.receiptPhotos = receiptPhotos
	o.cancellationReason = cancellationReason
	o.createdAt = createdAt
	o.acceptedAt = acceptedAt
	o.startedAt = startedAt
	o.completedAt = completedAt
	o.cancelledAt = cancelledAt

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() Number {
	return o.number
}

// CustomerID returns the requesting customer's user ID.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// AgentID returns the bound agent's ID, or nil if no agent is bound.
func (o *Order) AgentID() *kernel.UUID {
	return o.agentID
}

// ServiceID returns the requested catalog service's ID.
func (o *Order) ServiceID() kernel.UUID {
	return o.serviceID
}

// Description returns the task description.
func (o *Order) Description() string {
	return o.description
}

// Details returns the optional request attributes.
func (o *Order) Details() Details {
	return o.details
}

// ServiceFee returns the fee snapshotted from the catalog at creation.
func (o *Order) ServiceFee() kernel.Money {
	return o.serviceFee
}

// AdditionalCosts returns the pass-through costs recorded at completion.
func (o *Order) AdditionalCosts() kernel.Money {
	return o.additionalCosts
}

// TotalAmount returns serviceFee + additionalCosts.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentConfirmed reports whether the gateway has confirmed payment.
func (o *Order) PaymentConfirmed() bool {
	return o.paymentConfirmed
}

// CompletionNotes returns the agent's completion notes.
func (o *Order) CompletionNotes() string {
	return o.completionNotes
}

// CompletionPhotos returns URLs of photos documenting the completed work.
func (o *Order) CompletionPhotos() []string {
	return o.completionPhotos
}

// ReceiptPhotos returns URLs of receipts for additional costs.
func (o *Order) ReceiptPhotos() []string {
	return o.receiptPhotos
}

// CancellationReason returns the reason supplied at cancellation, if any.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AcceptedAt returns when an agent accepted the order, or nil.
func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// StartedAt returns when work began, or nil.
func (o *Order) StartedAt() *time.Time {
	return o.startedAt
}

// CompletedAt returns when the order was completed, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// CancelledAt returns when the order was cancelled, or nil.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// ConfirmPayment marks the order's payment as confirmed, making it visible
// to the assignment arbiter. Idempotent.
func (o *Order) ConfirmPayment() {
	o.paymentConfirmed = true
}

// Accept binds an agent to the order and transitions it to Accepted.
//
// Business rules:
//   - The agent ID must be valid
//   - The payment must already be confirmed
//   - The order must be Pending with no agent bound
//
// On success the status becomes Accepted, the agent is recorded and the
// acceptance timestamp set. The companion agent-side mutations (busy flag,
// job counter) are the accept command handler's responsibility and must
// commit atomically with this transition.
func (o *Order) Accept(agentID kernel.UUID, at time.Time) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	if !o.paymentConfirmed {
		return ErrPaymentNotConfirmed
	}
	if o.agentID != nil {
		return ErrInvalidTransition
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.agentID = &agentID
	o.acceptedAt = &at
	return nil
}

// Start transitions the order to InProgress and records the start time.
// Valid only from Accepted.
func (o *Order) Start(at time.Time) error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.startedAt = &at
	return nil
}

// Complete transitions the order to Completed, records the completion
// evidence and recomputes the total amount as serviceFee + additionalCosts.
// Valid only from InProgress.
func (o *Order) Complete(report CompletionReport, at time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.completionNotes = report.Notes
	o.completionPhotos = report.CompletionPhotos
	o.receiptPhotos = report.ReceiptPhotos
	o.additionalCosts = report.AdditionalCosts
	o.totalAmount = o.serviceFee.Add(report.AdditionalCosts)
	o.completedAt = &at
	return nil
}

// Cancel transitions the order to Cancelled and records the cancellation
// time and optional reason. Valid from any non-terminal status; the agent
// binding (if any) is preserved for audit.
func (o *Order) Cancel(reason string, at time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellationReason = reason
	o.cancelledAt = &at
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setNumber validates and sets the order number.
func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

// setCustomerID validates and sets the customer reference.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setServiceID validates and sets the catalog service reference.
func (o *Order) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	o.serviceID = serviceID
	return nil
}

// setDescription validates and sets the task description.
func (o *Order) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}
	o.description = description
	return nil
}
