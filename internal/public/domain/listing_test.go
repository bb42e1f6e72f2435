package domain_test

import (
	"strings"
	"testing"

	"github.com/sngm3741/resort-crew/api/internal/public/domain"
)

func boolPtr(v bool) *bool { return &v }

func TestJobPostingVisible(t *testing.T) {
	cases := []struct {
		name    string
		posting domain.JobPosting
		want    bool
	}{
		{"approved without flags", domain.JobPosting{Status: domain.PostingApproved}, true},
		{"approved explicit flags", domain.JobPosting{Status: domain.PostingApproved, IsHidden: boolPtr(false), IsActive: boolPtr(true)}, true},
		{"hidden", domain.JobPosting{Status: domain.PostingApproved, IsHidden: boolPtr(true)}, false},
		{"deactivated", domain.JobPosting{Status: domain.PostingApproved, IsActive: boolPtr(false)}, false},
		{"draft", domain.JobPosting{Status: domain.PostingDraft}, false},
		{"rejected", domain.JobPosting{Status: domain.PostingRejected}, false},
		{"legacy pending", domain.JobPosting{Status: "pending"}, false},
	}
	for _, c := range cases {
		if got := c.posting.Visible(); got != c.want {
			t.Errorf("%s: Visible() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestNewListingItem_LodgingProvidedBySeparateRecord(t *testing.T) {
	employer := &domain.EmployerProfile{EmployerID: "e1", Name: "용평리조트", Region: "강원도 평창군", LodgingOffered: false}
	lodging := &domain.LodgingProfile{EmployerID: "e1", Capacity: 40}

	item := domain.NewListingItem(domain.JobPosting{ID: "p1"}, employer, lodging, domain.ReviewSummary{})
	if !item.LodgingProvided {
		t.Fatal("lodging record presence must mark lodging as provided")
	}
	if item.Region != (domain.Region{Province: "강원도", District: "평창군"}) {
		t.Fatalf("Region = %+v", item.Region)
	}
}

func TestNewListingItem_MissingRecordsDefault(t *testing.T) {
	item := domain.NewListingItem(domain.JobPosting{ID: "p1"}, nil, nil, domain.ReviewSummary{})
	if item.Employer != nil || item.EmployerName != "" || item.LodgingProvided || len(item.Facilities) != 0 {
		t.Fatalf("unexpected join defaults: %+v", item)
	}
	if item.Region != (domain.Region{}) {
		t.Fatalf("Region = %+v, want empty", item.Region)
	}
}

func TestListingFilterMatches(t *testing.T) {
	employer := &domain.EmployerProfile{
		Name:              "High1 Resort",
		Region:            "강원도 정선군 고한읍",
		LodgingOffered:    true,
		LodgingFacilities: []string{"와이파이", "세탁기"},
	}
	item := domain.NewListingItem(domain.JobPosting{
		Title:       "Front Desk",
		Description: "겨울 시즌 프런트 근무",
	}, employer, nil, domain.ReviewSummary{})

	cases := []struct {
		name   string
		filter domain.ListingFilter
		want   bool
	}{
		{"zero filter", domain.ListingFilter{}, true},
		{"title case-insensitive", domain.ListingFilter{SearchTerm: "front desk"}, true},
		{"employer name", domain.ListingFilter{SearchTerm: "high1"}, true},
		{"description", domain.ListingFilter{SearchTerm: "시즌"}, true},
		{"term miss", domain.ListingFilter{SearchTerm: "lifeguard"}, false},
		{"province", domain.ListingFilter{Province: "강원도"}, true},
		{"province miss", domain.ListingFilter{Province: "경기도"}, false},
		{"district", domain.ListingFilter{Province: "강원도", District: "정선군"}, true},
		{"district miss", domain.ListingFilter{District: "평창군"}, false},
		{"lodging any", domain.ListingFilter{Lodging: domain.LodgingAny}, true},
		{"lodging provided", domain.ListingFilter{Lodging: domain.LodgingProvided}, true},
		{"lodging not provided", domain.ListingFilter{Lodging: domain.LodgingNotProvided}, false},
		{"facility", domain.ListingFilter{Facility: "세탁기"}, true},
		{"facility miss", domain.ListingFilter{Facility: "주차"}, false},
		{"all ANDed", domain.ListingFilter{SearchTerm: "front", Province: "강원도", Lodging: domain.LodgingProvided, Facility: "와이파이"}, true},
		{"one failing clause", domain.ListingFilter{SearchTerm: "front", Province: "강원도", Facility: "주차"}, false},
	}
	for _, c := range cases {
		if got := c.filter.Matches(item); got != c.want {
			t.Errorf("%s: Matches = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestParseLodgingFilter(t *testing.T) {
	cases := map[string]domain.LodgingFilter{
		"":             domain.LodgingAny,
		"any":          domain.LodgingAny,
		"provided":     domain.LodgingProvided,
		" Provided ":   domain.LodgingProvided,
		"not-provided": domain.LodgingNotProvided,
		"bogus":        domain.LodgingAny,
	}
	for input, want := range cases {
		if got := domain.ParseLodgingFilter(input); got != want {
			t.Errorf("ParseLodgingFilter(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestCanonicalFacilities(t *testing.T) {
	got := domain.CanonicalFacilities([]string{" WiFi ", "와이파이", "", "parking", "온천"})
	want := []string{"와이파이", "주차", "온천"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestListingFilterMatches_StoredAliasFacility(t *testing.T) {
	employer := &domain.EmployerProfile{
		Name:              "Yongpyong",
		LodgingFacilities: []string{"wifi", "Laundry"},
	}
	item := domain.NewListingItem(domain.JobPosting{Title: "Lift Operator"}, employer, nil, domain.ReviewSummary{})
	if strings.Join(item.Facilities, ",") != "와이파이,세탁기" {
		t.Fatalf("Facilities = %v", item.Facilities)
	}
	for _, facility := range []string{"wifi", "와이파이", "laundry"} {
		if !(domain.ListingFilter{Facility: facility}).Matches(item) {
			t.Errorf("Facility %q should match %v", facility, item.Facilities)
		}
	}
}
