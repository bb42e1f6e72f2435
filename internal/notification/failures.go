package notification

import (
	"context"
	"time"
)

// FailureStatus tracks a failed delivery through the retry worker.
type FailureStatus string

const (
	FailurePending   FailureStatus = "pending"
	FailureDelivered FailureStatus = "delivered"
	FailureAbandoned FailureStatus = "abandoned"
)

// FailedDelivery is a delivery that exhausted its in-request retries.
type FailedDelivery struct {
	ID             string
	NotificationID string
	Delivery       Delivery
	Error          string
	Attempts       int
	Status         FailureStatus
	CreatedAt      time.Time
	LastTriedAt    time.Time
}

// FailureStore persists failed deliveries for the retry worker.
type FailureStore interface {
	Record(ctx context.Context, failure FailedDelivery) error
	ListPending(ctx context.Context, limit int) ([]FailedDelivery, error)
	Update(ctx context.Context, failure FailedDelivery) error
}
