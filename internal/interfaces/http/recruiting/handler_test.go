package recruiting

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/resort-crew/api/internal/apperr"
	"github.com/sngm3741/resort-crew/api/internal/interfaces/http/common"
	"github.com/sngm3741/resort-crew/api/internal/pagination"
	recruitingapp "github.com/sngm3741/resort-crew/api/internal/recruiting/application"
	"github.com/sngm3741/resort-crew/api/internal/recruiting/domain"
)

type stubApplications struct {
	app *domain.Application

	submitted  recruitingapp.SubmitApplicationCommand
	decision   domain.Decision
	decideErr  error
	filter     domain.ApplicationFilter
	activeCall struct {
		employerID, postingID string
		active                bool
	}
}

func (s *stubApplications) Submit(_ context.Context, cmd recruitingapp.SubmitApplicationCommand) (*domain.Application, error) {
	s.submitted = cmd
	if cmd.PostingID == "taken" {
		return nil, &apperr.ConflictError{Msg: "이미 지원한 공고입니다"}
	}
	return &domain.Application{ID: "a1", PostingID: cmd.PostingID, JobseekerID: cmd.JobseekerID, Status: domain.StatusPending}, nil
}

func (s *stubApplications) Update(_ context.Context, _, id string, _ domain.CandidateDetails) (*domain.Application, error) {
	return nil, &apperr.ConflictError{Msg: "대기 중인 지원서만 수정할 수 있습니다"}
}

func (s *stubApplications) Get(_ context.Context, userID, id string) (*domain.Application, error) {
	if s.app == nil || !s.app.VisibleTo(userID) {
		return nil, apperr.NotFound("application", id)
	}
	return s.app, nil
}

func (s *stubApplications) ListForJobseeker(_ context.Context, _ string, paging recruitingapp.Paging) (pagination.Page[domain.Application], error) {
	return pagination.Apply([]domain.Application{}, paging.Page, paging.Limit), nil
}

func (s *stubApplications) RecordInterview(_ context.Context, _, id string, record domain.InterviewRecord) (*domain.Application, error) {
	return &domain.Application{ID: id, Status: domain.StatusInterviewCompleted, EmployerFeedback: record.Note}, nil
}

func (s *stubApplications) Decide(_ context.Context, _, id string, decision domain.Decision) (*domain.Application, error) {
	s.decision = decision
	if s.decideErr != nil {
		return nil, s.decideErr
	}
	return &domain.Application{ID: id, Status: decision.Result}, nil
}

func (s *stubApplications) ListForEmployer(_ context.Context, _ string, filter domain.ApplicationFilter, paging recruitingapp.Paging) (pagination.Page[domain.Application], error) {
	s.filter = filter
	return pagination.Apply([]domain.Application{{ID: "a1"}}, paging.Page, paging.Limit), nil
}

func (s *stubApplications) SetPostingActive(_ context.Context, employerID, postingID string, active bool) error {
	s.activeCall.employerID = employerID
	s.activeCall.postingID = postingID
	s.activeCall.active = active
	return nil
}

type stubNotifications struct {
	items []domain.Notification
}

func (s *stubNotifications) List(_ context.Context, userID string, paging recruitingapp.Paging) (recruitingapp.NotificationList, error) {
	unread := 0
	for _, n := range s.items {
		if !n.IsRead {
			unread++
		}
	}
	return recruitingapp.NotificationList{Page: pagination.Apply(s.items, paging.Page, paging.Limit), Unread: unread}, nil
}

func (s *stubNotifications) MarkAsRead(_ context.Context, userID, id string) (*domain.Notification, error) {
	for i := range s.items {
		if s.items[i].ID == id && s.items[i].UserID == userID {
			s.items[i].MarkRead()
			return &s.items[i], nil
		}
	}
	return nil, apperr.NotFound("notification", id)
}

// headerAuth authenticates with X-Test-User / X-Test-Role headers.
func headerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Test-User")
		if id == "" {
			common.WriteJSON(nil, w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}
		user := common.AuthenticatedUser{ID: id, Name: "지원자", Role: r.Header.Get("X-Test-Role")}
		next.ServeHTTP(w, r.WithContext(common.ContextWithUser(r.Context(), user)))
	})
}

func newRouter(apps *stubApplications, notes *stubNotifications) http.Handler {
	h := NewHandler(Config{Logger: log.New(io.Discard, "", 0), Applications: apps, Notifications: notes})
	r := chi.NewRouter()
	h.Register(r, headerAuth)
	return r
}

func do(router http.Handler, method, target, body, user, role string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if user != "" {
		req.Header.Set("X-Test-User", user)
		req.Header.Set("X-Test-Role", role)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitApplication(t *testing.T) {
	apps := &stubApplications{}
	router := newRouter(apps, &stubNotifications{})

	rec := do(router, http.MethodPost, "/jobs/p1/applications", `{"coverLetter":" 안녕하세요 ","skills":["서빙"," "]}`, "js1", common.RoleJobseeker)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if apps.submitted.JobseekerID != "js1" || apps.submitted.JobseekerName != "지원자" {
		t.Fatalf("command = %+v", apps.submitted)
	}
	if apps.submitted.Details.CoverLetter != "안녕하세요" || len(apps.submitted.Details.Skills) != 1 {
		t.Fatalf("details = %+v", apps.submitted.Details)
	}

	rec = do(router, http.MethodPost, "/jobs/taken/applications", `{}`, "js1", common.RoleJobseeker)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate status = %d", rec.Code)
	}
}

func TestRoleGuards(t *testing.T) {
	router := newRouter(&stubApplications{}, &stubNotifications{})

	tests := []struct {
		name   string
		method string
		target string
		user   string
		role   string
		want   int
	}{
		{"anonymous apply", http.MethodPost, "/jobs/p1/applications", "", "", http.StatusUnauthorized},
		{"employer cannot apply", http.MethodPost, "/jobs/p1/applications", "e1", common.RoleEmployer, http.StatusForbidden},
		{"jobseeker cannot decide", http.MethodPost, "/employer/applications/a1/decision", "js1", common.RoleJobseeker, http.StatusForbidden},
		{"jobseeker cannot list dashboard", http.MethodGet, "/employer/applications", "js1", common.RoleJobseeker, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(router, tt.method, tt.target, `{}`, tt.user, tt.role)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestDecisionHandler(t *testing.T) {
	apps := &stubApplications{}
	router := newRouter(apps, &stubNotifications{})

	rec := do(router, http.MethodPost, "/employer/applications/a1/decision", `{"decision":"Accepted","reason":" 성실함 ","offerDetails":"월 250"}`, "e1", common.RoleEmployer)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if apps.decision.Result != domain.StatusAccepted || apps.decision.Reason != "성실함" {
		t.Fatalf("decision = %+v", apps.decision)
	}

	apps.decideErr = &apperr.InvalidTransitionError{From: "accepted", To: "rejected"}
	rec = do(router, http.MethodPost, "/employer/applications/a1/decision", `{"decision":"rejected","reason":"x"}`, "e1", common.RoleEmployer)
	if rec.Code != http.StatusConflict {
		t.Fatalf("transition status = %d", rec.Code)
	}

	apps.decideErr = apperr.Invalid("reason", "결정 사유를 입력해주세요")
	rec = do(router, http.MethodPost, "/employer/applications/a1/decision", `{"decision":"rejected"}`, "e1", common.RoleEmployer)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("validation status = %d", rec.Code)
	}

	rec = do(router, http.MethodPost, "/employer/applications/a1/decision", `not json`, "e1", common.RoleEmployer)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed status = %d", rec.Code)
	}
}

func TestInterviewHandler(t *testing.T) {
	router := newRouter(&stubApplications{}, &stubNotifications{})

	rec := do(router, http.MethodPost, "/employer/applications/a1/interview", `{"note":"좋음","interviewDate":"2026-01-05T10:00:00Z"}`, "e1", common.RoleEmployer)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var body applicationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != domain.StatusInterviewCompleted || body.EmployerFeedback != "좋음" {
		t.Fatalf("body = %+v", body)
	}

	long := strings.Repeat("가", common.MaxReasonRunes+1)
	rec = do(router, http.MethodPost, "/employer/applications/a1/interview", `{"note":"`+long+`"}`, "e1", common.RoleEmployer)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("long note status = %d", rec.Code)
	}
}

func TestEmployerListFilters(t *testing.T) {
	apps := &stubApplications{}
	router := newRouter(apps, &stubNotifications{})

	rec := do(router, http.MethodGet, "/employer/applications?status=PENDING&jobPostId=p1&q=kim", "", "e1", common.RoleEmployer)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if apps.filter.Status != domain.StatusPending || apps.filter.PostingID != "p1" || apps.filter.Query != "kim" {
		t.Fatalf("filter = %+v", apps.filter)
	}

	rec = do(router, http.MethodGet, "/employer/applications?status=hired", "", "e1", common.RoleEmployer)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad status filter = %d", rec.Code)
	}
}

func TestPostingActiveHandler(t *testing.T) {
	apps := &stubApplications{}
	router := newRouter(apps, &stubNotifications{})

	rec := do(router, http.MethodPatch, "/employer/jobs/p9/active", `{"isActive":false}`, "e1", common.RoleEmployer)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if apps.activeCall.postingID != "p9" || apps.activeCall.employerID != "e1" || apps.activeCall.active {
		t.Fatalf("call = %+v", apps.activeCall)
	}

	rec = do(router, http.MethodPatch, "/employer/jobs/p9/active", `{}`, "e1", common.RoleEmployer)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing flag status = %d", rec.Code)
	}
}

func TestApplicationDetailHidesOthers(t *testing.T) {
	apps := &stubApplications{app: &domain.Application{ID: "a1", JobseekerID: "js1", EmployerID: "e1"}}
	router := newRouter(apps, &stubNotifications{})

	if rec := do(router, http.MethodGet, "/applications/a1", "", "js1", common.RoleJobseeker); rec.Code != http.StatusOK {
		t.Fatalf("owner status = %d", rec.Code)
	}
	if rec := do(router, http.MethodGet, "/applications/a1", "", "e1", common.RoleEmployer); rec.Code != http.StatusOK {
		t.Fatalf("employer status = %d", rec.Code)
	}
	if rec := do(router, http.MethodGet, "/applications/a1", "", "js2", common.RoleJobseeker); rec.Code != http.StatusNotFound {
		t.Fatalf("stranger status = %d", rec.Code)
	}
}

func TestNotifications(t *testing.T) {
	notes := &stubNotifications{items: []domain.Notification{
		{ID: "n1", UserID: "js1", Title: "합격 안내", CreatedAt: time.Now()},
		{ID: "n2", UserID: "js1", Title: "불합격 안내", IsRead: true, CreatedAt: time.Now()},
	}}
	router := newRouter(&stubApplications{}, notes)

	rec := do(router, http.MethodGet, "/me/notifications", "", "js1", common.RoleJobseeker)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var list notificationListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Data) != 2 || list.Unread != 1 {
		t.Fatalf("list = %+v", list)
	}

	rec = do(router, http.MethodPost, "/me/notifications/n1/read", "", "js1", common.RoleJobseeker)
	if rec.Code != http.StatusOK || !notes.items[0].IsRead {
		t.Fatalf("read status = %d", rec.Code)
	}

	rec = do(router, http.MethodPost, "/me/notifications/n1/read", "", "other", common.RoleJobseeker)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("foreign read status = %d", rec.Code)
	}
}
