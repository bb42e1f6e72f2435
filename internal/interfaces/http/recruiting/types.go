package recruiting

import (
	"strings"
	"time"

	"github.com/sngm3741/resort-crew/api/internal/pagination"
	"github.com/sngm3741/resort-crew/api/internal/recruiting/domain"
)

type candidateRequest struct {
	CoverLetter    string   `json:"coverLetter"`
	Experience     string   `json:"experience"`
	Education      string   `json:"education"`
	Skills         []string `json:"skills"`
	ExpectedSalary string   `json:"expectedSalary"`
	Message        string   `json:"message"`
}

func (c candidateRequest) toDomain() domain.CandidateDetails {
	skills := make([]string, 0, len(c.Skills))
	for _, skill := range c.Skills {
		if s := strings.TrimSpace(skill); s != "" {
			skills = append(skills, s)
		}
	}
	return domain.CandidateDetails{
		CoverLetter:    strings.TrimSpace(c.CoverLetter),
		Experience:     strings.TrimSpace(c.Experience),
		Education:      strings.TrimSpace(c.Education),
		Skills:         skills,
		ExpectedSalary: strings.TrimSpace(c.ExpectedSalary),
		Message:        strings.TrimSpace(c.Message),
	}
}

type interviewRequest struct {
	Note          string     `json:"note"`
	ContactInfo   string     `json:"contactInfo"`
	InterviewDate *time.Time `json:"interviewDate"`
}

type decisionRequest struct {
	Decision     string `json:"decision"`
	Reason       string `json:"reason"`
	OfferDetails string `json:"offerDetails"`
}

type activeRequest struct {
	IsActive *bool `json:"isActive"`
}

type candidateResponse struct {
	CoverLetter    string   `json:"coverLetter,omitempty"`
	Experience     string   `json:"experience,omitempty"`
	Education      string   `json:"education,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	ExpectedSalary string   `json:"expectedSalary,omitempty"`
	Message        string   `json:"message,omitempty"`
}

type applicationResponse struct {
	ID                   string            `json:"id"`
	PostingID            string            `json:"jobPostId"`
	PostingTitle         string            `json:"jobPostTitle,omitempty"`
	EmployerID           string            `json:"employerId"`
	JobseekerID          string            `json:"jobseekerId"`
	JobseekerName        string            `json:"jobseekerName,omitempty"`
	Status               domain.Status     `json:"status"`
	Candidate            candidateResponse `json:"candidate"`
	EmployerFeedback     string            `json:"employerFeedback,omitempty"`
	EmployerFeedbackAt   *time.Time        `json:"employerFeedbackAt,omitempty"`
	OfferDetails         string            `json:"offerDetails,omitempty"`
	InterviewContactInfo string            `json:"interviewContactInfo,omitempty"`
	InterviewDate        *time.Time        `json:"interviewDate,omitempty"`
	AppliedAt            time.Time         `json:"appliedAt"`
	UpdatedAt            time.Time         `json:"updatedAt"`
}

type applicationListResponse struct {
	Data       []applicationResponse `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}

type notificationResponse struct {
	ID            string                  `json:"id"`
	Title         string                  `json:"title"`
	Message       string                  `json:"message"`
	Type          domain.NotificationType `json:"type"`
	IsRead        bool                    `json:"isRead"`
	ApplicationID string                  `json:"applicationId,omitempty"`
	Status        domain.Status           `json:"status,omitempty"`
	CreatedAt     time.Time               `json:"createdAt"`
}

type notificationListResponse struct {
	Data       []notificationResponse `json:"data"`
	Pagination pagination.Pagination  `json:"pagination"`
	Unread     int                    `json:"unread"`
}

func toApplicationResponse(app domain.Application) applicationResponse {
	return applicationResponse{
		ID:            app.ID,
		PostingID:     app.PostingID,
		PostingTitle:  app.PostingTitle,
		EmployerID:    app.EmployerID,
		JobseekerID:   app.JobseekerID,
		JobseekerName: app.JobseekerName,
		Status:        app.Status,
		Candidate: candidateResponse{
			CoverLetter:    app.Candidate.CoverLetter,
			Experience:     app.Candidate.Experience,
			Education:      app.Candidate.Education,
			Skills:         app.Candidate.Skills,
			ExpectedSalary: app.Candidate.ExpectedSalary,
			Message:        app.Candidate.Message,
		},
		EmployerFeedback:     app.EmployerFeedback,
		EmployerFeedbackAt:   app.EmployerFeedbackAt,
		OfferDetails:         app.OfferDetails,
		InterviewContactInfo: app.InterviewContactInfo,
		InterviewDate:        app.InterviewDate,
		AppliedAt:            app.AppliedAt,
		UpdatedAt:            app.UpdatedAt,
	}
}

func toApplicationListResponse(page pagination.Page[domain.Application]) applicationListResponse {
	items := make([]applicationResponse, 0, len(page.Data))
	for _, app := range page.Data {
		items = append(items, toApplicationResponse(app))
	}
	return applicationListResponse{Data: items, Pagination: page.Pagination}
}

func toNotificationResponse(n domain.Notification) notificationResponse {
	return notificationResponse{
		ID:            n.ID,
		Title:         n.Title,
		Message:       n.Message,
		Type:          n.Type,
		IsRead:        n.IsRead,
		ApplicationID: n.ApplicationID,
		Status:        n.Status,
		CreatedAt:     n.CreatedAt,
	}
}
