package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// pendingAge is how long a payment may sit pending before the provider is
// asked for the intent's state directly.
const pendingAge = 15 * time.Minute

// paymentSyncer reconciles payments stuck pending. Implemented by
// commands.ReconcilePaymentCommandHandler.
type paymentSyncer interface {
	SyncPending(ctx context.Context, olderThan time.Duration) (int, error)
}

// PaymentSyncJob periodically reconciles payments whose provider webhook
// never arrived. Runs every five minutes.
type PaymentSyncJob struct {
	syncer paymentSyncer
	cron   *cron.Cron
	logger *slog.Logger
}

// NewPaymentSyncJob creates the sync job for stale pending payments.
func NewPaymentSyncJob(syncer paymentSyncer, logger *slog.Logger) *PaymentSyncJob {
	return &PaymentSyncJob{
		syncer: syncer,
		cron:   cron.New(),
		logger: logger.With("component", "payment_sync_job"),
	}
}

// Start begins the payment sync job to run every five minutes.
func (j *PaymentSyncJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()

		synced, err := j.syncer.SyncPending(ctx, pendingAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Payment sync job failed", "error", err)
			return
		}
		if synced > 0 {
			j.logger.InfoContext(ctx, "Reconciled stale pending payments", "count", synced)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment sync job started (running every five minutes)")
	return nil
}

// Stop stops the payment sync job.
func (j *PaymentSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment sync job stopped")
}
