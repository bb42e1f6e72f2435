package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/sngm3741/resort-crew/api/internal/apperr"
	"github.com/sngm3741/resort-crew/api/internal/recruiting/domain"
)

var now = time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC)

func pendingApplication() domain.Application {
	return domain.Application{
		ID:            "app-1",
		PostingID:     "post-1",
		PostingTitle:  "Front Desk",
		EmployerID:    "emp-1",
		JobseekerID:   "seeker-1",
		JobseekerName: "김하늘",
		Status:        domain.StatusPending,
		AppliedAt:     now.Add(-24 * time.Hour),
	}
}

func interviewedApplication(t *testing.T) domain.Application {
	t.Helper()
	app, err := domain.RecordInterview(pendingApplication(), domain.InterviewRecord{Note: "성실함"}, now)
	if err != nil {
		t.Fatalf("RecordInterview: %v", err)
	}
	return app
}

func TestRecordInterview_FromPending(t *testing.T) {
	date := now.Add(-2 * time.Hour)
	app, err := domain.RecordInterview(pendingApplication(), domain.InterviewRecord{
		Note:          "  밝은 태도  ",
		ContactInfo:   "010-1234-5678",
		InterviewDate: &date,
	}, now)
	if err != nil {
		t.Fatalf("RecordInterview: %v", err)
	}
	if app.Status != domain.StatusInterviewCompleted {
		t.Fatalf("Status = %s", app.Status)
	}
	if app.EmployerFeedback != "밝은 태도" || app.InterviewContactInfo != "010-1234-5678" {
		t.Fatalf("feedback = %q contact = %q", app.EmployerFeedback, app.InterviewContactInfo)
	}
	if app.EmployerFeedbackAt == nil || !app.EmployerFeedbackAt.Equal(now) {
		t.Fatalf("EmployerFeedbackAt = %v", app.EmployerFeedbackAt)
	}
	if app.InterviewDate == nil || !app.InterviewDate.Equal(date) {
		t.Fatalf("InterviewDate = %v", app.InterviewDate)
	}
}

func TestRecordInterview_RejectsNonPending(t *testing.T) {
	for _, s := range []domain.Status{
		domain.StatusInterviewCompleted,
		domain.StatusAccepted,
		domain.StatusRejected,
		domain.StatusReviewing,
		domain.StatusWithdrawn,
	} {
		app := pendingApplication()
		app.Status = s
		got, err := domain.RecordInterview(app, domain.InterviewRecord{Note: "x"}, now)
		if !apperr.IsInvalidTransition(err) {
			t.Errorf("RecordInterview from %s: err = %v, want InvalidTransitionError", s, err)
		}
		if got.Status != s {
			t.Errorf("RecordInterview from %s changed status to %s", s, got.Status)
		}
	}
}

func TestDecide_PendingToAcceptedIsRejected(t *testing.T) {
	_, err := domain.Decide(pendingApplication(), domain.Decision{Result: domain.StatusAccepted, Reason: "good fit"}, "n-1", now)
	if !apperr.IsInvalidTransition(err) {
		t.Fatalf("err = %v, want InvalidTransitionError", err)
	}
}

func TestDecide_RejectionAfterInterview(t *testing.T) {
	out, err := domain.Decide(interviewedApplication(t), domain.Decision{Result: domain.StatusRejected, Reason: "skills mismatch"}, "n-1", now)
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if out.Application.Status != domain.StatusRejected {
		t.Fatalf("Status = %s", out.Application.Status)
	}
	if out.Application.EmployerFeedback != "[rejection] skills mismatch" {
		t.Fatalf("EmployerFeedback = %q", out.Application.EmployerFeedback)
	}

	n := out.Notification
	if n.ID != "n-1" || n.UserID != "seeker-1" || n.ApplicationID != "app-1" || n.Status != domain.StatusRejected {
		t.Fatalf("notification = %+v", n)
	}
	if !strings.Contains(n.Message, "skills mismatch") {
		t.Fatalf("notification message %q does not contain the reason", n.Message)
	}
	if n.IsRead {
		t.Fatal("new notification must be unread")
	}
}

func TestDecide_AcceptedKeepsOfferDetails(t *testing.T) {
	out, err := domain.Decide(interviewedApplication(t), domain.Decision{
		Result:       domain.StatusAccepted,
		Reason:       "경험 풍부",
		OfferDetails: "월 250만원, 기숙사 제공",
	}, "n-2", now)
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if out.Application.EmployerFeedback != "[hiring] 경험 풍부" {
		t.Fatalf("EmployerFeedback = %q", out.Application.EmployerFeedback)
	}
	if out.Application.OfferDetails != "월 250만원, 기숙사 제공" {
		t.Fatalf("OfferDetails = %q", out.Application.OfferDetails)
	}
	if !strings.Contains(out.Notification.Message, "경험 풍부") || !strings.Contains(out.Notification.Message, "기숙사") {
		t.Fatalf("message = %q", out.Notification.Message)
	}
}

func TestDecide_RejectedDropsOfferDetails(t *testing.T) {
	out, err := domain.Decide(interviewedApplication(t), domain.Decision{
		Result:       domain.StatusRejected,
		Reason:       "일정 불일치",
		OfferDetails: "ignored",
	}, "n-3", now)
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if out.Application.OfferDetails != "" {
		t.Fatalf("OfferDetails = %q, want empty", out.Application.OfferDetails)
	}
}

func TestDecide_RequiresReason(t *testing.T) {
	for _, result := range []domain.Status{domain.StatusAccepted, domain.StatusRejected} {
		for _, reason := range []string{"", "   "} {
			_, err := domain.Decide(interviewedApplication(t), domain.Decision{Result: result, Reason: reason}, "n", now)
			if !apperr.IsValidation(err) {
				t.Errorf("Decide(%s, %q) err = %v, want ValidationError", result, reason, err)
			}
		}
	}
}

func TestDecide_RejectsNonDecisionResult(t *testing.T) {
	for _, result := range []domain.Status{"", domain.StatusPending, domain.StatusInterviewCompleted, domain.StatusOfferSent} {
		_, err := domain.Decide(interviewedApplication(t), domain.Decision{Result: result, Reason: "x"}, "n", now)
		if !apperr.IsValidation(err) {
			t.Errorf("Decide(%q) err = %v, want ValidationError", result, err)
		}
	}
}

func TestDecide_TerminalStatesCannotMove(t *testing.T) {
	for _, from := range []domain.Status{domain.StatusAccepted, domain.StatusRejected} {
		for _, to := range []domain.Status{domain.StatusAccepted, domain.StatusRejected} {
			app := pendingApplication()
			app.Status = from
			_, err := domain.Decide(app, domain.Decision{Result: to, Reason: "again"}, "n", now)
			if !apperr.IsInvalidTransition(err) {
				t.Errorf("Decide %s → %s err = %v, want InvalidTransitionError", from, to, err)
			}
		}
	}
}

func TestDecide_LegacyStatusCannotMove(t *testing.T) {
	app := pendingApplication()
	app.Status = domain.StatusOfferSent
	_, err := domain.Decide(app, domain.Decision{Result: domain.StatusAccepted, Reason: "legacy"}, "n", now)
	if !apperr.IsInvalidTransition(err) {
		t.Fatalf("err = %v, want InvalidTransitionError", err)
	}
}

func TestRevise_OnlyWhilePending(t *testing.T) {
	app := pendingApplication()
	if err := app.Revise(domain.CandidateDetails{CoverLetter: " 새 자기소개 ", Skills: []string{"스키", " ", "영어"}}, now); err != nil {
		t.Fatalf("Revise: %v", err)
	}
	if app.Candidate.CoverLetter != "새 자기소개" || len(app.Candidate.Skills) != 2 {
		t.Fatalf("Candidate = %+v", app.Candidate)
	}

	interviewed := interviewedApplication(t)
	if err := interviewed.Revise(domain.CandidateDetails{CoverLetter: "late"}, now); !apperr.IsConflict(err) {
		t.Fatalf("err = %v, want ConflictError", err)
	}
	if interviewed.Candidate.CoverLetter == "late" {
		t.Fatal("Revise must not modify an advanced application")
	}

	decided := pendingApplication()
	decided.Status = domain.StatusAccepted
	err := decided.Revise(domain.CandidateDetails{CoverLetter: "late"}, now)
	if !apperr.IsConflict(err) || !strings.Contains(err.Error(), "already decided") {
		t.Fatalf("err = %v, want already-decided ConflictError", err)
	}
}

// Input validation runs before the state guard, also for terminal sources.
func TestDecide_ValidationPrecedesStateGuardForTerminal(t *testing.T) {
	for _, from := range []domain.Status{domain.StatusAccepted, domain.StatusRejected} {
		app := pendingApplication()
		app.Status = from
		if _, err := domain.Decide(app, domain.Decision{Result: domain.StatusAccepted, Reason: "  "}, "n", now); !apperr.IsValidation(err) {
			t.Errorf("%s with empty reason: err = %v, want ValidationError", from, err)
		}
		if _, err := domain.Decide(app, domain.Decision{Result: domain.StatusPending, Reason: "ok"}, "n", now); !apperr.IsValidation(err) {
			t.Errorf("%s with result pending: err = %v, want ValidationError", from, err)
		}
		if _, err := domain.Decide(app, domain.Decision{Result: domain.StatusRejected, Reason: "ok"}, "n", now); !apperr.IsInvalidTransition(err) {
			t.Errorf("%s with valid input: err = %v, want InvalidTransitionError", from, err)
		}
	}
}

func TestApplicationVisibleTo(t *testing.T) {
	app := pendingApplication()
	cases := map[string]bool{"seeker-1": true, "emp-1": true, "someone": false, "": false}
	for user, want := range cases {
		if got := app.VisibleTo(user); got != want {
			t.Errorf("VisibleTo(%q) = %v, want %v", user, got, want)
		}
	}
}

func TestNewApplication(t *testing.T) {
	app, err := domain.NewApplication("a", "p", "Front Desk", "e", "s", " 이름 ", domain.CandidateDetails{}, now)
	if err != nil {
		t.Fatalf("NewApplication: %v", err)
	}
	if app.Status != domain.StatusPending || app.JobseekerName != "이름" || !app.AppliedAt.Equal(now) {
		t.Fatalf("app = %+v", app)
	}
	if _, err := domain.NewApplication("a", "", "", "e", "s", "", domain.CandidateDetails{}, now); !apperr.IsValidation(err) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestFilterApplications(t *testing.T) {
	apps := []domain.Application{
		{ID: "1", PostingID: "p1", PostingTitle: "Front Desk", JobseekerName: "Kim Minji", Status: domain.StatusPending},
		{ID: "2", PostingID: "p1", PostingTitle: "Front Desk", JobseekerName: "Lee Jun", Status: domain.StatusInterviewCompleted},
		{ID: "3", PostingID: "p2", PostingTitle: "Lift Operator", JobseekerName: "Park Sora", Status: domain.StatusPending},
	}
	cases := []struct {
		name   string
		filter domain.ApplicationFilter
		want   []string
	}{
		{"none", domain.ApplicationFilter{}, []string{"1", "2", "3"}},
		{"status", domain.ApplicationFilter{Status: domain.StatusPending}, []string{"1", "3"}},
		{"posting", domain.ApplicationFilter{PostingID: "p1"}, []string{"1", "2"}},
		{"name query", domain.ApplicationFilter{Query: "MINJI"}, []string{"1"}},
		{"title query", domain.ApplicationFilter{Query: "lift"}, []string{"3"}},
		{"anded", domain.ApplicationFilter{Status: domain.StatusPending, PostingID: "p1", Query: "front"}, []string{"1"}},
		{"no match", domain.ApplicationFilter{Status: domain.StatusAccepted}, nil},
	}
	for _, c := range cases {
		got := domain.FilterApplications(apps, c.filter)
		if len(got) != len(c.want) {
			t.Errorf("%s: got %d apps, want %d", c.name, len(got), len(c.want))
			continue
		}
		for i := range got {
			if got[i].ID != c.want[i] {
				t.Errorf("%s: got[%d] = %s, want %s", c.name, i, got[i].ID, c.want[i])
			}
		}
	}
}
