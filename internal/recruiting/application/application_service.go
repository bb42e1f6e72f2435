package application

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sngm3741/resort-crew/api/internal/apperr"
	"github.com/sngm3741/resort-crew/api/internal/pagination"
	"github.com/sngm3741/resort-crew/api/internal/recruiting/domain"
)

// Dependencies wires an ApplicationService. Publisher, NewID and Now are optional.
type Dependencies struct {
	Applications  ApplicationRepository
	Postings      PostingRepository
	Notifications NotificationRepository
	Dispatcher    NotificationDispatcher
	Publisher     EventPublisher
	NewID         func() string
	Now           func() time.Time
}

// applicationService is the concrete implementation of ApplicationService.
type applicationService struct {
	apps          ApplicationRepository
	postings      PostingRepository
	notifications NotificationRepository
	dispatcher    NotificationDispatcher
	publisher     EventPublisher
	newID         func() string
	now           func() time.Time
	logger        *log.Logger
}

// NewApplicationService creates a new application service.
func NewApplicationService(deps Dependencies, logger *log.Logger) ApplicationService {
	if deps.Publisher == nil {
		deps.Publisher = NoopPublisher{}
	}
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	if deps.Now == nil {
		deps.Now = func() time.Time { return time.Now().UTC() }
	}
	if logger == nil {
		logger = log.Default()
	}
	return &applicationService{
		apps:          deps.Applications,
		postings:      deps.Postings,
		notifications: deps.Notifications,
		dispatcher:    deps.Dispatcher,
		publisher:     deps.Publisher,
		newID:         deps.NewID,
		now:           deps.Now,
		logger:        logger,
	}
}

func (s *applicationService) Submit(ctx context.Context, cmd SubmitApplicationCommand) (*domain.Application, error) {
	postingID := strings.TrimSpace(cmd.PostingID)
	posting, err := s.postings.GetPosting(ctx, postingID)
	if err != nil {
		return nil, apperr.Upstream("posting", err)
	}
	if posting == nil || !posting.Visible() {
		return nil, apperr.NotFound("posting", postingID)
	}

	existing, err := s.apps.FindByPostingAndJobseeker(ctx, postingID, cmd.JobseekerID)
	if err != nil {
		return nil, apperr.Upstream("applications", err)
	}
	if existing != nil {
		return nil, &apperr.ConflictError{Msg: "이미 지원한 공고입니다"}
	}

	app, err := domain.NewApplication(s.newID(), postingID, posting.Title, posting.EmployerID, cmd.JobseekerID, cmd.JobseekerName, cmd.Details, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.apps.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.publish(ctx, "submitted", *app)
	return app, nil
}

func (s *applicationService) Update(ctx context.Context, jobseekerID, applicationID string, details domain.CandidateDetails) (*domain.Application, error) {
	app, err := s.load(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.JobseekerID != jobseekerID {
		return nil, apperr.NotFound("application", applicationID)
	}
	if err := app.Revise(details, s.now()); err != nil {
		return nil, err
	}
	if err := s.apps.Save(ctx, app); err != nil {
		return nil, fmt.Errorf("save application: %w", err)
	}
	return app, nil
}

func (s *applicationService) Get(ctx context.Context, userID, applicationID string) (*domain.Application, error) {
	app, err := s.load(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !app.VisibleTo(userID) {
		return nil, apperr.NotFound("application", applicationID)
	}
	return app, nil
}

func (s *applicationService) ListForJobseeker(ctx context.Context, jobseekerID string, paging Paging) (pagination.Page[domain.Application], error) {
	apps, err := s.apps.ListByJobseeker(ctx, jobseekerID)
	if err != nil {
		return pagination.Page[domain.Application]{}, apperr.Upstream("applications", err)
	}
	sortNewestApplications(apps)
	return pagination.Apply(apps, paging.Page, paging.Limit), nil
}

func (s *applicationService) RecordInterview(ctx context.Context, employerID, applicationID string, record domain.InterviewRecord) (*domain.Application, error) {
	app, err := s.loadOwned(ctx, employerID, applicationID)
	if err != nil {
		return nil, err
	}

	updated, err := domain.RecordInterview(*app, record, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.apps.Save(ctx, &updated); err != nil {
		return nil, fmt.Errorf("save application: %w", err)
	}

	s.publish(ctx, "interview_recorded", updated)
	return &updated, nil
}

// Decide commits the decision first. Notification persistence and delivery
// afterwards are best-effort and never undo the transition. They run detached
// from the request's cancellation once the decision is saved.
func (s *applicationService) Decide(ctx context.Context, employerID, applicationID string, decision domain.Decision) (*domain.Application, error) {
	app, err := s.loadOwned(ctx, employerID, applicationID)
	if err != nil {
		return nil, err
	}

	outcome, err := domain.Decide(*app, decision, s.newID(), s.now())
	if err != nil {
		return nil, err
	}
	if err := s.apps.Save(ctx, &outcome.Application); err != nil {
		return nil, fmt.Errorf("save application: %w", err)
	}

	sideCtx := context.WithoutCancel(ctx)
	notification := outcome.Notification
	if err := s.notifications.Create(sideCtx, &notification); err != nil {
		s.logger.Printf("notification create failed application=%s: %v", applicationID, err)
	}
	if s.dispatcher != nil {
		if err := s.dispatcher.Dispatch(sideCtx, notification); err != nil {
			s.logger.Printf("notification dispatch failed application=%s: %v", applicationID, err)
		}
	}

	s.publish(ctx, "decided", outcome.Application)
	return &outcome.Application, nil
}

func (s *applicationService) ListForEmployer(ctx context.Context, employerID string, filter domain.ApplicationFilter, paging Paging) (pagination.Page[domain.Application], error) {
	apps, err := s.apps.ListByEmployer(ctx, employerID)
	if err != nil {
		return pagination.Page[domain.Application]{}, apperr.Upstream("applications", err)
	}
	filtered := domain.FilterApplications(apps, filter)
	sortNewestApplications(filtered)
	return pagination.Apply(filtered, paging.Page, paging.Limit), nil
}

func (s *applicationService) SetPostingActive(ctx context.Context, employerID, postingID string, active bool) error {
	posting, err := s.postings.GetPosting(ctx, postingID)
	if err != nil {
		return apperr.Upstream("posting", err)
	}
	if posting == nil || posting.EmployerID != employerID {
		return apperr.NotFound("posting", postingID)
	}
	if err := s.postings.SetActive(ctx, postingID, active, s.now()); err != nil {
		return fmt.Errorf("set posting active: %w", err)
	}
	return nil
}

func (s *applicationService) load(ctx context.Context, applicationID string) (*domain.Application, error) {
	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, apperr.Upstream("application", err)
	}
	if app == nil {
		return nil, apperr.NotFound("application", applicationID)
	}
	return app, nil
}

// loadOwned hides applications of other employers behind NotFoundError.
func (s *applicationService) loadOwned(ctx context.Context, employerID, applicationID string) (*domain.Application, error) {
	app, err := s.load(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.EmployerID == "" || app.EmployerID != employerID {
		return nil, apperr.NotFound("application", applicationID)
	}
	return app, nil
}

func (s *applicationService) publish(ctx context.Context, action string, app domain.Application) {
	if err := s.publisher.Publish(context.WithoutCancel(ctx), newApplicationEvent(action, app, s.now())); err != nil {
		s.logger.Printf("publish %s failed application=%s: %v", EventApplicationUpdated, app.ID, err)
	}
}

func sortNewestApplications(apps []domain.Application) {
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].AppliedAt.After(apps[j].AppliedAt)
	})
}
