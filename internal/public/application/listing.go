package application

import (
	"sort"

	"github.com/sngm3741/resort-crew/api/internal/pagination"
	"github.com/sngm3741/resort-crew/api/internal/public/domain"
)

// Snapshot is the current contents of the four stores a listing is built from.
// Missing map entries mean "no data" for that employer.
type Snapshot struct {
	Postings  []domain.JobPosting
	Employers map[string]*domain.EmployerProfile
	Lodgings  map[string]*domain.LodgingProfile
	Reviews   map[string]domain.ReviewSummary
}

// AggregateListing runs the listing pipeline over a snapshot:
// visibility, newest-first sort, join, user filters, pagination.
func AggregateListing(snapshot Snapshot, filter domain.ListingFilter, page, limit int) pagination.Page[domain.ListingItem] {
	visible := VisiblePostings(snapshot.Postings)

	items := make([]domain.ListingItem, 0, len(visible))
	for _, posting := range visible {
		item := domain.NewListingItem(
			posting,
			snapshot.Employers[posting.EmployerID],
			snapshot.Lodgings[posting.EmployerID],
			snapshot.Reviews[posting.EmployerID],
		)
		if !filter.Matches(item) {
			continue
		}
		items = append(items, item)
	}

	return pagination.Apply(items, page, limit)
}

// VisiblePostings keeps the postings a listing may show, newest first.
// Postings without a creation time sort after every dated posting.
func VisiblePostings(postings []domain.JobPosting) []domain.JobPosting {
	visible := make([]domain.JobPosting, 0, len(postings))
	for _, posting := range postings {
		if posting.Visible() {
			visible = append(visible, posting)
		}
	}
	sortNewestFirst(visible)
	return visible
}

func sortNewestFirst(postings []domain.JobPosting) {
	sort.SliceStable(postings, func(i, j int) bool {
		a, b := postings[i].CreatedAt, postings[j].CreatedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}

// employerIDs returns the distinct employers of the given postings in first-seen order.
func employerIDs(postings []domain.JobPosting) []string {
	seen := make(map[string]struct{}, len(postings))
	ids := make([]string, 0, len(postings))
	for _, posting := range postings {
		if posting.EmployerID == "" {
			continue
		}
		if _, ok := seen[posting.EmployerID]; ok {
			continue
		}
		seen[posting.EmployerID] = struct{}{}
		ids = append(ids, posting.EmployerID)
	}
	return ids
}
