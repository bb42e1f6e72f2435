package application

import (
	"context"
	"time"

	"github.com/sngm3741/resort-crew/api/internal/pagination"
	publicdomain "github.com/sngm3741/resort-crew/api/internal/public/domain"
	"github.com/sngm3741/resort-crew/api/internal/recruiting/domain"
)

// ApplicationRepository persists applications. Lookups return nil without error
// when nothing matches.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	Save(ctx context.Context, app *domain.Application) error
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	FindByPostingAndJobseeker(ctx context.Context, postingID, jobseekerID string) (*domain.Application, error)
	ListByEmployer(ctx context.Context, employerID string) ([]domain.Application, error)
	ListByJobseeker(ctx context.Context, jobseekerID string) ([]domain.Application, error)
}

// PostingRepository is the slice of the posting store the recruiting context needs.
type PostingRepository interface {
	GetPosting(ctx context.Context, id string) (*publicdomain.JobPosting, error)
	SetActive(ctx context.Context, id string, active bool, now time.Time) error
}

// NotificationRepository persists in-app notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	Save(ctx context.Context, n *domain.Notification) error
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
}

// NotificationDispatcher delivers a notification outside the app. Delivery is best-effort.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, n domain.Notification) error
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
}

// SubmitApplicationCommand captures a jobseeker's application.
type SubmitApplicationCommand struct {
	PostingID     string
	JobseekerID   string
	JobseekerName string
	Details       domain.CandidateDetails
}

// ApplicationService describes the application lifecycle use-cases.
type ApplicationService interface {
	Submit(ctx context.Context, cmd SubmitApplicationCommand) (*domain.Application, error)
	Update(ctx context.Context, jobseekerID, applicationID string, details domain.CandidateDetails) (*domain.Application, error)
	Get(ctx context.Context, userID, applicationID string) (*domain.Application, error)
	ListForJobseeker(ctx context.Context, jobseekerID string, paging Paging) (pagination.Page[domain.Application], error)

	RecordInterview(ctx context.Context, employerID, applicationID string, record domain.InterviewRecord) (*domain.Application, error)
	Decide(ctx context.Context, employerID, applicationID string, decision domain.Decision) (*domain.Application, error)
	ListForEmployer(ctx context.Context, employerID string, filter domain.ApplicationFilter, paging Paging) (pagination.Page[domain.Application], error)
	SetPostingActive(ctx context.Context, employerID, postingID string, active bool) error
}

// NotificationService describes the notification inbox use-cases.
type NotificationService interface {
	List(ctx context.Context, userID string, paging Paging) (NotificationList, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) (*domain.Notification, error)
}

// NotificationList is one inbox page plus the number of unread notifications overall.
type NotificationList struct {
	pagination.Page[domain.Notification]
	Unread int `json:"unread"`
}
