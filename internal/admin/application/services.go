package application

import (
	"context"
	"time"

	"github.com/sngm3741/resort-crew/api/internal/pagination"
	publicdomain "github.com/sngm3741/resort-crew/api/internal/public/domain"
)

// PostingRepository exposes admin operations on postings.
type PostingRepository interface {
	ListPostings(ctx context.Context) ([]publicdomain.JobPosting, error)
	GetPosting(ctx context.Context, id string) (*publicdomain.JobPosting, error)
	UpdateModeration(ctx context.Context, id string, status publicdomain.PostingStatus, hidden bool, now time.Time) error
}

// PostingFilter expresses admin search criteria.
type PostingFilter struct {
	Status     string
	EmployerID string
	Keyword    string
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
}

// ModeratePostingCommand contains inputs for moderating a posting. Nil fields are kept.
type ModeratePostingCommand struct {
	Status   *string
	IsHidden *bool
}

// ModerationService describes admin posting use-cases.
type ModerationService interface {
	List(ctx context.Context, filter PostingFilter, paging Paging) (pagination.Page[publicdomain.JobPosting], error)
	Detail(ctx context.Context, id string) (*publicdomain.JobPosting, error)
	Moderate(ctx context.Context, id string, cmd ModeratePostingCommand) (*publicdomain.JobPosting, error)
}
