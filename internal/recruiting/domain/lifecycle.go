package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/sngm3741/resort-crew/api/internal/apperr"
)

// InterviewRecord is what an employer writes after interviewing a candidate.
type InterviewRecord struct {
	Note          string
	ContactInfo   string
	InterviewDate *time.Time
}

// Decision is the employer's hiring decision. Reason is mandatory for both results.
// OfferDetails is kept only when Result is StatusAccepted.
type Decision struct {
	Result       Status
	Reason       string
	OfferDetails string
}

// DecisionOutcome is the decided application together with the notification the
// candidate must receive. The caller persists and delivers both.
type DecisionOutcome struct {
	Application  Application
	Notification Notification
}

const (
	hiringTag    = "[hiring]"
	rejectionTag = "[rejection]"
)

// RecordInterview moves a pending application to interview_completed.
// It produces no notification.
func RecordInterview(app Application, record InterviewRecord, now time.Time) (Application, error) {
	if !IsTransitionAllowed(app.Status, StatusInterviewCompleted) {
		return app, &apperr.InvalidTransitionError{From: string(app.Status), To: string(StatusInterviewCompleted)}
	}

	feedbackAt := now
	app.Status = StatusInterviewCompleted
	app.EmployerFeedback = strings.TrimSpace(record.Note)
	app.EmployerFeedbackAt = &feedbackAt
	app.InterviewContactInfo = strings.TrimSpace(record.ContactInfo)
	app.InterviewDate = record.InterviewDate
	app.UpdatedAt = now
	return app, nil
}

// Decide applies a hiring decision to an application that completed its interview.
// Input is validated before the state guard.
func Decide(app Application, decision Decision, notificationID string, now time.Time) (DecisionOutcome, error) {
	reason := strings.TrimSpace(decision.Reason)
	if decision.Result != StatusAccepted && decision.Result != StatusRejected {
		return DecisionOutcome{}, apperr.Invalid("decision", "accepted 또는 rejected 중 하나를 선택해주세요")
	}
	if reason == "" {
		return DecisionOutcome{}, apperr.Invalid("reason", "결정 사유를 입력해주세요")
	}
	if !IsTransitionAllowed(app.Status, decision.Result) {
		return DecisionOutcome{}, &apperr.InvalidTransitionError{From: string(app.Status), To: string(decision.Result)}
	}

	feedbackAt := now
	app.Status = decision.Result
	app.EmployerFeedbackAt = &feedbackAt
	app.UpdatedAt = now
	app.OfferDetails = ""
	if decision.Result == StatusAccepted {
		app.EmployerFeedback = hiringTag + " " + reason
		app.OfferDetails = strings.TrimSpace(decision.OfferDetails)
	} else {
		app.EmployerFeedback = rejectionTag + " " + reason
	}

	return DecisionOutcome{
		Application:  app,
		Notification: decisionNotification(app, reason, notificationID, now),
	}, nil
}

func decisionNotification(app Application, reason, id string, now time.Time) Notification {
	posting := app.PostingTitle
	if posting == "" {
		posting = "지원하신"
	}

	var title, message string
	if app.Status == StatusAccepted {
		title = "합격 안내"
		message = fmt.Sprintf("%s 공고에 합격하셨습니다. 사유: %s", posting, reason)
		if app.OfferDetails != "" {
			message += "\n제안 내용: " + app.OfferDetails
		}
	} else {
		title = "불합격 안내"
		message = fmt.Sprintf("%s 공고에 불합격하셨습니다. 사유: %s", posting, reason)
	}

	return Notification{
		ID:            id,
		UserID:        app.JobseekerID,
		Title:         title,
		Message:       message,
		Type:          NotificationApplicationStatus,
		ApplicationID: app.ID,
		Status:        app.Status,
		CreatedAt:     now,
	}
}
