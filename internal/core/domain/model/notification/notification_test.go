package notification_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofer/internal/core/domain/model/kernel"
	"gofer/internal/core/domain/model/notification"
)

func newTestNotification(t *testing.T) *notification.Notification {
	t.Helper()
	orderID := kernel.NewUUID()
	n, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(), &orderID,
		"+15551234567", "Your order GO-ABC123 has been accepted!", time.Now())
	require.NoError(t, err)
	return n
}

func Test_NewNotification(t *testing.T) {
	id := kernel.NewUUID()
	userID := kernel.NewUUID()

	n, err := notification.NewNotification(id, userID, nil,
		"+15551234567", "Welcome to the platform!", time.Now())

	require.NoError(t, err)
	assert.True(t, n.ID().IsEqual(id))
	assert.True(t, n.UserID().IsEqual(userID))
	assert.Nil(t, n.OrderID())
	assert.Equal(t, notification.StatusPending, n.Status())
	assert.Equal(t, 0, n.RetryCount())
	assert.Nil(t, n.SentAt())
	assert.NoError(t, n.Validate())
}

func Test_NewNotification_Invalid(t *testing.T) {
	_, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(), nil,
		"", "hello", time.Now())
	assert.Error(t, err)

	_, err = notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(), nil,
		"+15551234567", "", time.Now())
	assert.Error(t, err)
}

func Test_Notification_MarkSent(t *testing.T) {
	n := newTestNotification(t)
	at := time.Now()

	err := n.MarkSent("SM1234567890", at)

	require.NoError(t, err)
	assert.Equal(t, notification.StatusSent, n.Status())
	assert.Equal(t, "SM1234567890", n.ExternalID())
	require.NotNil(t, n.SentAt())
	assert.Equal(t, at, *n.SentAt())
}

func Test_Notification_MarkSent_ClearsPreviousError(t *testing.T) {
	n := newTestNotification(t)
	n.MarkFailed("provider timeout")

	require.NoError(t, n.MarkSent("SM1234567890", time.Now()))

	assert.Empty(t, n.ErrorMessage())
	assert.Equal(t, 1, n.RetryCount())
}

func Test_Notification_MarkFailed(t *testing.T) {
	n := newTestNotification(t)

	n.MarkFailed("provider timeout")
	n.MarkFailed("provider timeout")

	assert.Equal(t, notification.StatusFailed, n.Status())
	assert.Equal(t, "provider timeout", n.ErrorMessage())
	assert.Equal(t, 2, n.RetryCount())
}

func Test_Notification_CanRetry(t *testing.T) {
	n := newTestNotification(t)
	assert.False(t, n.CanRetry(3), "pending notifications are not retried")

	n.MarkFailed("provider timeout")
	assert.True(t, n.CanRetry(3))

	n.MarkFailed("provider timeout")
	n.MarkFailed("provider timeout")
	assert.False(t, n.CanRetry(3), "retry budget exhausted")

	require.NoError(t, n.MarkSent("SM1", time.Now()))
	assert.False(t, n.CanRetry(10), "sent notifications are not retried")
}
