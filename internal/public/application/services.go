package application

import (
	"context"

	"github.com/sngm3741/resort-crew/api/internal/pagination"
	"github.com/sngm3741/resort-crew/api/internal/public/domain"
)

// PostingSource reads job postings. ListPostings returns every posting; the
// listing paginates the joined result, not the raw fetch.
type PostingSource interface {
	ListPostings(ctx context.Context) ([]domain.JobPosting, error)
	GetPosting(ctx context.Context, id string) (*domain.JobPosting, error)
}

// EmployerProfileSource returns nil without error when the employer has no profile.
type EmployerProfileSource interface {
	GetEmployerProfile(ctx context.Context, employerID string) (*domain.EmployerProfile, error)
}

// LodgingProfileSource returns nil without error when the employer has no lodging record.
type LodgingProfileSource interface {
	GetLodgingProfile(ctx context.Context, employerID string) (*domain.LodgingProfile, error)
}

// ReviewSource reads the append-only review records.
type ReviewSource interface {
	ListReviews(ctx context.Context) ([]domain.ReviewRecord, error)
	ListReviewsByEmployer(ctx context.Context, employerID string) ([]domain.ReviewRecord, error)
}

// Paging controls pagination.
type Paging struct {
	Page  int
	Limit int
}

// ListingQueryService describes listing read use-cases.
type ListingQueryService interface {
	List(ctx context.Context, filter domain.ListingFilter, paging Paging) (pagination.Page[domain.ListingItem], error)
	Detail(ctx context.Context, postingID string) (*domain.ListingItem, error)
	ReviewSummary(ctx context.Context, employerID string) (domain.ReviewSummary, error)
}
