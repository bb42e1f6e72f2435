package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/resort-crew/api/internal/apperr"
	"github.com/sngm3741/resort-crew/api/internal/interfaces/http/common"
	"github.com/sngm3741/resort-crew/api/internal/pagination"
	publicapp "github.com/sngm3741/resort-crew/api/internal/public/application"
	publicdomain "github.com/sngm3741/resort-crew/api/internal/public/domain"
)

type stubListings struct {
	gotFilter publicdomain.ListingFilter
	gotPaging publicapp.Paging
	items     []publicdomain.ListingItem
	detail    *publicdomain.ListingItem
	summary   publicdomain.ReviewSummary
	err       error
}

func (s *stubListings) List(_ context.Context, filter publicdomain.ListingFilter, paging publicapp.Paging) (pagination.Page[publicdomain.ListingItem], error) {
	s.gotFilter = filter
	s.gotPaging = paging
	if s.err != nil {
		return pagination.Page[publicdomain.ListingItem]{}, s.err
	}
	return pagination.Apply(s.items, paging.Page, paging.Limit), nil
}

func (s *stubListings) Detail(_ context.Context, id string) (*publicdomain.ListingItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.detail == nil || s.detail.Posting.ID != id {
		return nil, apperr.NotFound("posting", id)
	}
	return s.detail, nil
}

func (s *stubListings) ReviewSummary(context.Context, string) (publicdomain.ReviewSummary, error) {
	return s.summary, s.err
}

func newTestRouter(listings publicapp.ListingQueryService) http.Handler {
	h := NewHandler(Config{Logger: log.New(io.Discard, "", 0), Listings: listings})
	r := chi.NewRouter()
	fakeAuth := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := common.ContextWithUser(r.Context(), common.AuthenticatedUser{ID: "u1", Role: common.RoleJobseeker})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
	h.Register(r, fakeAuth)
	return r
}

func TestJobListParsesQuery(t *testing.T) {
	rating := 4.25
	listings := &stubListings{items: []publicdomain.ListingItem{
		{
			Posting:      publicdomain.JobPosting{ID: "p1", EmployerID: "e1", Title: "프런트 스태프"},
			EmployerName: "설악 리조트",
			Reviews:      publicdomain.ReviewSummary{Count: 2, AverageRating: &rating},
		},
	}}
	router := newTestRouter(listings)

	req := httptest.NewRequest(http.MethodGet, "/jobs?q=front&province=gangwon&lodging=provided&facility=wifi&page=1&limit=500", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if listings.gotFilter.Lodging != publicdomain.LodgingProvided || listings.gotFilter.Facility != "와이파이" {
		t.Fatalf("filter = %+v", listings.gotFilter)
	}
	if listings.gotPaging.Limit != common.MaxPageLimit {
		t.Fatalf("limit = %d", listings.gotPaging.Limit)
	}

	var body jobListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 1 || body.Pagination.TotalItems != 1 {
		t.Fatalf("body = %+v", body)
	}
	if got := body.Data[0].Reviews.AverageRating; got == nil || *got != 4.3 {
		t.Fatalf("average = %v", got)
	}
}

func TestJobListDefaultsPaging(t *testing.T) {
	listings := &stubListings{}
	router := newTestRouter(listings)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs?page=-3", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if listings.gotPaging.Page != 1 || listings.gotPaging.Limit != common.DefaultPageLimit {
		t.Fatalf("paging = %+v", listings.gotPaging)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(body["data"]) != "[]" {
		t.Fatalf("data = %s", body["data"])
	}
}

func TestJobListUpstreamFailure(t *testing.T) {
	router := newTestRouter(&stubListings{err: apperr.Upstream("postings", errors.New("timeout"))})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs", nil))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestJobDetail(t *testing.T) {
	listings := &stubListings{detail: &publicdomain.ListingItem{
		Posting:  publicdomain.JobPosting{ID: "p1", Title: "하우스키핑"},
		Employer: &publicdomain.EmployerProfile{EmployerID: "e1", Name: "제주 리조트"},
	}}
	router := newTestRouter(listings)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs/p1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body jobDetailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Employer == nil || body.Employer.Name != "제주 리조트" || body.Lodging != nil {
		t.Fatalf("body = %+v", body)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing status = %d", rec.Code)
	}
}

func TestReviewSummaryWithoutRatings(t *testing.T) {
	router := newTestRouter(&stubListings{summary: publicdomain.ReviewSummary{Count: 3}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employers/e1/reviews/summary", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["count"].(float64) != 3 || body["averageRating"] != nil {
		t.Fatalf("body = %v", body)
	}
}

func TestAuthVerify(t *testing.T) {
	router := newTestRouter(&stubListings{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/verify", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
