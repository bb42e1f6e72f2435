package domain

import "time"

// PostingStatus is the moderation state of a job posting.
type PostingStatus string

const (
	PostingDraft    PostingStatus = "draft"
	PostingApproved PostingStatus = "approved"
	PostingRejected PostingStatus = "rejected"
)

// SalaryRange describes the advertised pay of a posting.
type SalaryRange struct {
	Min  int
	Max  int
	Unit string
}

// JobPosting represents a job listing published by an employer.
// IsHidden and IsActive are nil when the stored record never carried the flag.
type JobPosting struct {
	ID          string
	EmployerID  string
	Title       string
	Description string
	Location    string
	Salary      SalaryRange
	Status      PostingStatus
	IsHidden    *bool
	IsActive    *bool
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

// Hidden reports whether moderation hid the posting. A missing flag means visible.
func (p JobPosting) Hidden() bool {
	return p.IsHidden != nil && *p.IsHidden
}

// Active reports whether the employer keeps the posting open. A missing flag means active.
func (p JobPosting) Active() bool {
	return p.IsActive == nil || *p.IsActive
}

// Visible is the listing visibility rule: approved, not hidden and not deactivated.
func (p JobPosting) Visible() bool {
	return p.Status == PostingApproved && !p.Hidden() && p.Active()
}
