package domain

import (
	"strings"
	"time"

	"github.com/sngm3741/resort-crew/api/internal/apperr"
)

// CandidateDetails is the free-form data a jobseeker writes when applying.
type CandidateDetails struct {
	CoverLetter    string
	Experience     string
	Education      string
	Skills         []string
	ExpectedSalary string
	Message        string
}

// Application is one jobseeker's application to one posting.
type Application struct {
	ID                   string
	PostingID            string
	PostingTitle         string
	EmployerID           string
	JobseekerID          string
	JobseekerName        string
	Status               Status
	Candidate            CandidateDetails
	EmployerFeedback     string
	EmployerFeedbackAt   *time.Time
	OfferDetails         string
	InterviewContactInfo string
	InterviewDate        *time.Time
	AppliedAt            time.Time
	UpdatedAt            time.Time
}

// NewApplication creates a pending application.
func NewApplication(id, postingID, postingTitle, employerID, jobseekerID, jobseekerName string, details CandidateDetails, now time.Time) (*Application, error) {
	if strings.TrimSpace(postingID) == "" {
		return nil, apperr.Invalid("jobPostId", "공고 ID가 필요합니다")
	}
	if strings.TrimSpace(jobseekerID) == "" {
		return nil, apperr.Invalid("jobseekerId", "지원자 정보가 필요합니다")
	}
	return &Application{
		ID:            id,
		PostingID:     postingID,
		PostingTitle:  postingTitle,
		EmployerID:    employerID,
		JobseekerID:   jobseekerID,
		JobseekerName: strings.TrimSpace(jobseekerName),
		Status:        StatusPending,
		Candidate:     details.normalized(),
		AppliedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Revise rewrites the candidate-authored fields. Only pending applications can be edited.
func (a *Application) Revise(details CandidateDetails, now time.Time) error {
	if a.Status.IsTerminal() {
		return &apperr.ConflictError{Msg: "application already decided (status " + string(a.Status) + ")"}
	}
	if a.Status != StatusPending {
		return &apperr.ConflictError{Msg: "application can only be edited while pending (status " + string(a.Status) + ")"}
	}
	a.Candidate = details.normalized()
	a.UpdatedAt = now
	return nil
}

// VisibleTo reports whether userID is the applicant or the posting's employer.
func (a *Application) VisibleTo(userID string) bool {
	return userID != "" && (userID == a.JobseekerID || userID == a.EmployerID)
}

func (d CandidateDetails) normalized() CandidateDetails {
	skills := make([]string, 0, len(d.Skills))
	for _, skill := range d.Skills {
		if s := strings.TrimSpace(skill); s != "" {
			skills = append(skills, s)
		}
	}
	return CandidateDetails{
		CoverLetter:    strings.TrimSpace(d.CoverLetter),
		Experience:     strings.TrimSpace(d.Experience),
		Education:      strings.TrimSpace(d.Education),
		Skills:         skills,
		ExpectedSalary: strings.TrimSpace(d.ExpectedSalary),
		Message:        strings.TrimSpace(d.Message),
	}
}
