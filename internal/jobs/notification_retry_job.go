package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// maxNotificationRetries is the per-notification retry budget. A failed
// message is re-attempted until this many attempts have been recorded, then
// left in place for manual inspection.
const maxNotificationRetries = 3

// notificationRetrier re-dispatches failed notifications. Implemented by
// notify.Dispatcher.
type notificationRetrier interface {
	RetryFailed(ctx context.Context, maxRetries int) (int, error)
}

// NotificationRetryJob periodically re-sends notifications whose delivery
// failed. Runs every minute.
type NotificationRetryJob struct {
	retrier notificationRetrier
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationRetryJob creates the retry job for failed notifications.
func NewNotificationRetryJob(retrier notificationRetrier, logger *slog.Logger) *NotificationRetryJob {
	return &NotificationRetryJob{
		retrier: retrier,
		cron:    cron.New(),
		logger:  logger.With("component", "notification_retry_job"),
	}
}

// Start begins the notification retry job to run every minute.
func (j *NotificationRetryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		sent, err := j.retrier.RetryFailed(ctx, maxNotificationRetries)
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification retry job failed", "error", err)
			return
		}
		if sent > 0 {
			j.logger.InfoContext(ctx, "Re-sent failed notifications", "count", sent)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retry job started (running every minute)")
	return nil
}

// Stop stops the notification retry job.
func (j *NotificationRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification retry job stopped")
}
