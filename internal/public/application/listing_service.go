package application

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sngm3741/resort-crew/api/internal/apperr"
	"github.com/sngm3741/resort-crew/api/internal/pagination"
	"github.com/sngm3741/resort-crew/api/internal/public/domain"
)

// ListingOptions tunes the secondary lookups of a listing query.
type ListingOptions struct {
	LookupConcurrency int
	LookupTimeout     time.Duration
}

// listingQueryService is the concrete implementation of ListingQueryService.
type listingQueryService struct {
	postings  PostingSource
	employers EmployerProfileSource
	lodgings  LodgingProfileSource
	reviews   ReviewSource
	opts      ListingOptions
	logger    *log.Logger
}

// NewListingQueryService creates a new listing query service.
func NewListingQueryService(
	postings PostingSource,
	employers EmployerProfileSource,
	lodgings LodgingProfileSource,
	reviews ReviewSource,
	opts ListingOptions,
	logger *log.Logger,
) ListingQueryService {
	if opts.LookupConcurrency <= 0 {
		opts.LookupConcurrency = 8
	}
	if opts.LookupTimeout <= 0 {
		opts.LookupTimeout = 2 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}
	return &listingQueryService{
		postings:  postings,
		employers: employers,
		lodgings:  lodgings,
		reviews:   reviews,
		opts:      opts,
		logger:    logger,
	}
}

func (s *listingQueryService) List(ctx context.Context, filter domain.ListingFilter, paging Paging) (pagination.Page[domain.ListingItem], error) {
	var (
		postings []domain.JobPosting
		records  []domain.ReviewRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		postings, err = s.postings.ListPostings(gctx)
		return apperr.Upstream("postings", err)
	})
	g.Go(func() error {
		var err error
		records, err = s.reviews.ListReviews(gctx)
		if err != nil {
			// レビューが読めなくても一覧は返す
			s.logger.Printf("listing: %v", apperr.Upstream("reviews", err))
			records = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return pagination.Page[domain.ListingItem]{}, err
	}

	visible := VisiblePostings(postings)
	employers, lodgings := s.loadProfiles(ctx, employerIDs(visible))

	snapshot := Snapshot{
		Postings:  visible,
		Employers: employers,
		Lodgings:  lodgings,
		Reviews:   domain.SummarizeReviews(records),
	}
	return AggregateListing(snapshot, filter, paging.Page, paging.Limit), nil
}

func (s *listingQueryService) Detail(ctx context.Context, postingID string) (*domain.ListingItem, error) {
	posting, err := s.postings.GetPosting(ctx, postingID)
	if err != nil {
		return nil, apperr.Upstream("posting", err)
	}
	if posting == nil || !posting.Visible() {
		return nil, apperr.NotFound("posting", postingID)
	}

	employers, lodgings := s.loadProfiles(ctx, []string{posting.EmployerID})

	var summary domain.ReviewSummary
	records, err := s.reviews.ListReviewsByEmployer(ctx, posting.EmployerID)
	if err != nil {
		s.logger.Printf("listing detail id=%q: %v", postingID, apperr.Upstream("reviews", err))
	} else {
		summary = domain.SummarizeEmployer(records, posting.EmployerID)
	}

	item := domain.NewListingItem(*posting, employers[posting.EmployerID], lodgings[posting.EmployerID], summary)
	return &item, nil
}

func (s *listingQueryService) ReviewSummary(ctx context.Context, employerID string) (domain.ReviewSummary, error) {
	records, err := s.reviews.ListReviewsByEmployer(ctx, employerID)
	if err != nil {
		return domain.ReviewSummary{}, apperr.Upstream("reviews", err)
	}
	return domain.SummarizeEmployer(records, employerID), nil
}

// loadProfiles fetches employer and lodging profiles concurrently. Lookups that
// fail or time out are logged and leave the entry absent.
func (s *listingQueryService) loadProfiles(ctx context.Context, ids []string) (map[string]*domain.EmployerProfile, map[string]*domain.LodgingProfile) {
	var (
		mu        sync.Mutex
		employers = make(map[string]*domain.EmployerProfile, len(ids))
		lodgings  = make(map[string]*domain.LodgingProfile, len(ids))
	)

	var g errgroup.Group
	g.SetLimit(s.opts.LookupConcurrency)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			lookupCtx, cancel := context.WithTimeout(ctx, s.opts.LookupTimeout)
			defer cancel()

			profile, err := s.employers.GetEmployerProfile(lookupCtx, id)
			if err != nil {
				s.logger.Printf("listing employer=%q: %v", id, apperr.Upstream("employer profile", err))
			} else if profile != nil {
				mu.Lock()
				employers[id] = profile
				mu.Unlock()
			}
			return nil
		})
		g.Go(func() error {
			lookupCtx, cancel := context.WithTimeout(ctx, s.opts.LookupTimeout)
			defer cancel()

			lodging, err := s.lodgings.GetLodgingProfile(lookupCtx, id)
			if err != nil {
				s.logger.Printf("listing employer=%q: %v", id, apperr.Upstream("lodging profile", err))
			} else if lodging != nil {
				mu.Lock()
				lodgings[id] = lodging
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return employers, lodgings
}
