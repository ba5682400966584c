package payment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/payment"
)

func newTestPayment(t *testing.T) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(),
		kernel.MustMoney(2500), "pi_test_123", time.Now())
	require.NoError(t, err)
	return p
}

func Test_NewPayment(t *testing.T) {
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()

	p, err := payment.NewPayment(id, orderID, kernel.MustMoney(2500), "pi_test_123", time.Now())

	require.NoError(t, err)
	assert.True(t, p.ID().IsEqual(id))
	assert.True(t, p.OrderID().IsEqual(orderID))
	assert.Equal(t, payment.StatusPending, p.Status())
	assert.Equal(t, "pi_test_123", p.ExternalRef())
	assert.Empty(t, p.ChargeRef())
	assert.Nil(t, p.ProcessedAt())
	assert.NoError(t, p.Validate())
}

func Test_NewPayment_RequiresExternalRef(t *testing.T) {
	_, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(),
		kernel.MustMoney(2500), "", time.Now())
	assert.Error(t, err)
}

func Test_Payment_MarkSucceeded(t *testing.T) {
	p := newTestPayment(t)
	at := time.Now()

	err := p.MarkSucceeded("ch_test_456", "card", "4242", at)

	require.NoError(t, err)
	assert.Equal(t, payment.StatusSucceeded, p.Status())
	assert.Equal(t, "ch_test_456", p.ChargeRef())
	assert.Equal(t, "card", p.MethodType())
	assert.Equal(t, "4242", p.Last4())
	require.NotNil(t, p.ProcessedAt())
	assert.Equal(t, at, *p.ProcessedAt())
}

func Test_Payment_MarkSucceeded_RequiresChargeRef(t *testing.T) {
	p := newTestPayment(t)

	err := p.MarkSucceeded("", "card", "4242", time.Now())

	assert.Error(t, err)
	assert.Equal(t, payment.StatusPending, p.Status())
}

func Test_Payment_MarkFailed(t *testing.T) {
	p := newTestPayment(t)

	err := p.MarkFailed("card declined", time.Now())

	require.NoError(t, err)
	assert.Equal(t, payment.StatusFailed, p.Status())
	assert.Equal(t, "card declined", p.FailureReason())
}

func Test_Payment_FailedCanStillSucceed(t *testing.T) {
	p := newTestPayment(t)
	require.NoError(t, p.MarkFailed("card declined", time.Now()))

	err := p.MarkSucceeded("ch_retry_789", "card", "4242", time.Now())

	require.NoError(t, err)
	assert.Equal(t, payment.StatusSucceeded, p.Status())
	assert.Empty(t, p.FailureReason())
}

func Test_Payment_MarkRefunded_FullByDefault(t *testing.T) {
	p := newTestPayment(t)
	require.NoError(t, p.MarkSucceeded("ch_test_456", "card", "4242", time.Now()))
	at := time.Now()

	err := p.MarkRefunded(kernel.Zero(), "customer request", at)

	require.NoError(t, err)
	assert.Equal(t, payment.StatusRefunded, p.Status())
	assert.Equal(t, p.Amount(), p.RefundAmount())
	assert.Equal(t, "customer request", p.RefundReason())
	require.NotNil(t, p.RefundedAt())
	assert.Equal(t, at, *p.RefundedAt())
}

func Test_Payment_MarkRefunded_Partial(t *testing.T) {
	p := newTestPayment(t)
	require.NoError(t, p.MarkSucceeded("ch_test_456", "card", "4242", time.Now()))

	err := p.MarkRefunded(kernel.MustMoney(1000), "late arrival", time.Now())

	require.NoError(t, err)
	assert.Equal(t, payment.StatusRefunded, p.Status())
	assert.Equal(t, kernel.MustMoney(1000), p.RefundAmount())
	assert.Equal(t, "late arrival", p.RefundReason())
}

func Test_Payment_MarkRefunded_ExceedsCharge(t *testing.T) {
	p := newTestPayment(t)
	require.NoError(t, p.MarkSucceeded("ch_test_456", "card", "4242", time.Now()))

	err := p.MarkRefunded(kernel.MustMoney(9999), "typo", time.Now())

	assert.ErrorIs(t, err, payment.ErrRefundExceedsCharge)
	assert.Equal(t, payment.StatusSucceeded, p.Status())
}

func Test_Payment_MarkRefunded_WithoutCharge(t *testing.T) {
	p := newTestPayment(t)

	err := p.MarkRefunded(kernel.Zero(), "", time.Now())

	assert.ErrorIs(t, err, payment.ErrNoChargeRecorded)
	assert.Equal(t, payment.StatusPending, p.Status())
}

func Test_Payment_InvalidTransitions(t *testing.T) {
	p := newTestPayment(t)
	require.NoError(t, p.MarkSucceeded("ch_1", "card", "4242", time.Now()))
	require.NoError(t, p.MarkRefunded(kernel.Zero(), "", time.Now()))

	assert.ErrorIs(t, p.MarkFailed("late decline", time.Now()), payment.ErrInvalidStatusTransition)
	assert.ErrorIs(t, p.MarkSucceeded("ch_2", "card", "4242", time.Now()), payment.ErrInvalidStatusTransition)
	assert.ErrorIs(t, p.MarkRefunded(kernel.Zero(), "", time.Now()), payment.ErrInvalidStatusTransition)
}

func Test_StatusFromString(t *testing.T) {
	for s, want := range map[string]payment.Status{
		"pending":    payment.StatusPending,
		"processing": payment.StatusProcessing,
		"succeeded":  payment.StatusSucceeded,
		"failed":     payment.StatusFailed,
		"refunded":   payment.StatusRefunded,
	} {
		got, err := payment.StatusFromString(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, s, got.String())
	}

	_, err := payment.StatusFromString("disputed")
	assert.Error(t, err)
}
