package notification

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// RetryWorker periodically re-sends pending failed deliveries.
type RetryWorker struct {
	cron        *cron.Cron
	spec        string
	sender      Sender
	failures    FailureStore
	maxAttempts int
	batchSize   int
	logger      *log.Logger
	now         func() time.Time
}

// NewRetryWorker creates a worker firing on spec (e.g. "@every 5m"). A delivery
// is abandoned once it reaches maxAttempts.
func NewRetryWorker(spec string, sender Sender, failures FailureStore, maxAttempts, batchSize int, logger *log.Logger) *RetryWorker {
	if maxAttempts < 1 {
		maxAttempts = 10
	}
	if batchSize < 1 {
		batchSize = 50
	}
	if logger == nil {
		logger = log.Default()
	}
	return &RetryWorker{
		cron:        cron.New(),
		spec:        spec,
		sender:      sender,
		failures:    failures,
		maxAttempts: maxAttempts,
		batchSize:   batchSize,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Start registers the job and starts the scheduler.
func (w *RetryWorker) Start(ctx context.Context) error {
	if _, err := w.cron.AddFunc(w.spec, func() {
		if _, err := w.RunOnce(ctx); err != nil {
			w.logger.Printf("[retry] cycle failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	w.cron.Start()
	w.logger.Printf("[retry] cron started spec=%s", w.spec)
	return nil
}

// Stop stops the scheduler and waits for a running cycle to finish.
func (w *RetryWorker) Stop() {
	<-w.cron.Stop().Done()
	w.logger.Println("[retry] cron stopped")
}

// RunOnce retries one batch of pending deliveries and returns how many were delivered.
func (w *RetryWorker) RunOnce(ctx context.Context) (int, error) {
	pending, err := w.failures.ListPending(ctx, w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("list pending deliveries: %w", err)
	}

	delivered := 0
	for _, failure := range pending {
		if ctx.Err() != nil {
			return delivered, ctx.Err()
		}

		failure.Attempts++
		failure.LastTriedAt = w.now()
		if err := w.sender.Send(ctx, failure.Delivery); err != nil {
			failure.Error = err.Error()
			if failure.Attempts >= w.maxAttempts {
				failure.Status = FailureAbandoned
				w.logger.Printf("[retry] giving up notification=%s attempts=%d: %v", failure.NotificationID, failure.Attempts, err)
			}
		} else {
			failure.Status = FailureDelivered
			failure.Error = ""
			delivered++
		}

		if err := w.failures.Update(ctx, failure); err != nil {
			w.logger.Printf("[retry] update %s failed: %v", failure.ID, err)
		}
	}
	return delivered, nil
}
