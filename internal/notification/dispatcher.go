package notification

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sngm3741/resort-crew/api/internal/recruiting/domain"
)

// DispatcherOptions controls in-request retries.
type DispatcherOptions struct {
	Destination string
	Attempts    int
	Delay       time.Duration
}

// Dispatcher renders notifications and sends them, recording failures for later retry.
type Dispatcher struct {
	sender    Sender
	templates *TemplateStore
	failures  FailureStore
	opts      DispatcherOptions
	logger    *log.Logger
	now       func() time.Time
}

// NewDispatcher wires a dispatcher. failures may be nil, in which case failed
// deliveries are only logged.
func NewDispatcher(sender Sender, templates *TemplateStore, failures FailureStore, opts DispatcherOptions, logger *log.Logger) *Dispatcher {
	if templates == nil {
		templates = NewTemplateStore()
	}
	if opts.Attempts < 1 {
		opts.Attempts = 3
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{
		sender:    sender,
		templates: templates,
		failures:  failures,
		opts:      opts,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Dispatch delivers n to its recipient. When every attempt fails the delivery is
// stored as pending and the send error is returned.
func (d *Dispatcher) Dispatch(ctx context.Context, n domain.Notification) error {
	text, err := d.templates.RenderNotification(n)
	if err != nil {
		return err
	}
	delivery := Delivery{
		UserID:      n.UserID,
		Destination: d.opts.Destination,
		Text:        text,
	}

	attempts, sendErr := sendWithRetry(ctx, d.sender, delivery, d.opts.Attempts, d.opts.Delay)
	if sendErr == nil {
		return nil
	}

	if d.failures != nil {
		now := d.now()
		failure := FailedDelivery{
			ID:             uuid.NewString(),
			NotificationID: n.ID,
			Delivery:       delivery,
			Error:          sendErr.Error(),
			Attempts:       attempts,
			Status:         FailurePending,
			CreatedAt:      now,
			LastTriedAt:    now,
		}
		// リクエストがキャンセルされていても失敗記録は残す
		if err := d.failures.Record(context.WithoutCancel(ctx), failure); err != nil {
			d.logger.Printf("failed_notifications への保存に失敗: %v", err)
		}
	}
	return fmt.Errorf("deliver notification %s: %w", n.ID, sendErr)
}
