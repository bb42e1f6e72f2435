package application

import (
	"context"
	"time"

	"github.com/sngm3741/resort-crew/api/internal/recruiting/domain"
)

// EventApplicationUpdated is published whenever an application is created or moves.
const EventApplicationUpdated = "EVENT_APPLICATION_UPDATED"

// ApplicationEvent is the payload published for application changes.
type ApplicationEvent struct {
	Type          string        `json:"type"`
	Action        string        `json:"action"`
	ApplicationID string        `json:"applicationId"`
	PostingID     string        `json:"jobPostId"`
	EmployerID    string        `json:"employerId"`
	JobseekerID   string        `json:"jobseekerId"`
	Status        domain.Status `json:"status"`
	OccurredAt    time.Time     `json:"occurredAt"`
}

// EventPublisher broadcasts application events. Failures are logged by callers.
type EventPublisher interface {
	Publish(ctx context.Context, event ApplicationEvent) error
}

// NoopPublisher discards events. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ApplicationEvent) error { return nil }

func newApplicationEvent(action string, app domain.Application, now time.Time) ApplicationEvent {
	return ApplicationEvent{
		Type:          EventApplicationUpdated,
		Action:        action,
		ApplicationID: app.ID,
		PostingID:     app.PostingID,
		EmployerID:    app.EmployerID,
		JobseekerID:   app.JobseekerID,
		Status:        app.Status,
		OccurredAt:    now,
	}
}
