package domain

import "strings"

// LodgingFilter narrows listings by whether worker housing is provided.
type LodgingFilter string

const (
	LodgingAny         LodgingFilter = "any"
	LodgingProvided    LodgingFilter = "provided"
	LodgingNotProvided LodgingFilter = "not-provided"
)

// ListingFilter holds the user-controlled filters. Zero values disable a filter.
type ListingFilter struct {
	SearchTerm string
	Province   string
	District   string
	Lodging    LodgingFilter
	Facility   string
}

// ListingItem is a visible posting joined with the data owned by other stores.
// Employer and Lodging are nil when the lookup found nothing or failed.
type ListingItem struct {
	Posting         JobPosting
	Employer        *EmployerProfile
	Lodging         *LodgingProfile
	EmployerName    string
	RegionText      string
	Region          Region
	LodgingProvided bool
	Facilities      []string
	Reviews         ReviewSummary
}

// NewListingItem joins a posting with its secondary records. Any of them may be nil.
func NewListingItem(posting JobPosting, employer *EmployerProfile, lodging *LodgingProfile, reviews ReviewSummary) ListingItem {
	item := ListingItem{
		Posting: posting,
		Lodging: lodging,
		Reviews: reviews,
	}
	if employer != nil {
		item.Employer = employer
		item.EmployerName = employer.Name
		item.RegionText = employer.Region
		item.LodgingProvided = employer.LodgingOffered
		item.Facilities = CanonicalFacilities(employer.LodgingFacilities)
	}
	if lodging != nil {
		item.LodgingProvided = true
	}
	item.Region = ParseRegion(item.RegionText)
	return item
}

// Matches applies every user filter; all of them must hold.
func (f ListingFilter) Matches(item ListingItem) bool {
	if term := strings.ToLower(strings.TrimSpace(f.SearchTerm)); term != "" {
		if !containsFold(item.Posting.Title, term) &&
			!containsFold(item.EmployerName, term) &&
			!containsFold(item.Posting.Description, term) {
			return false
		}
	}
	if province := strings.TrimSpace(f.Province); province != "" && item.Region.Province != province {
		return false
	}
	if district := strings.TrimSpace(f.District); district != "" && item.Region.District != district {
		return false
	}
	switch f.Lodging {
	case LodgingProvided:
		if !item.LodgingProvided {
			return false
		}
	case LodgingNotProvided:
		if item.LodgingProvided {
			return false
		}
	}
	if facility := CanonicalFacility(f.Facility); facility != "" && !containsString(item.Facilities, facility) {
		return false
	}
	return true
}

// ParseLodgingFilter maps request input to a LodgingFilter, defaulting to LodgingAny.
func ParseLodgingFilter(value string) LodgingFilter {
	switch LodgingFilter(strings.ToLower(strings.TrimSpace(value))) {
	case LodgingProvided:
		return LodgingProvided
	case LodgingNotProvided:
		return LodgingNotProvided
	default:
		return LodgingAny
	}
}

func containsFold(value, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(value), lowerTerm)
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == target {
			return true
		}
	}
	return false
}
