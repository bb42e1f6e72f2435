package public

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/resort-crew/api/internal/interfaces/http/common"
	publicapp "github.com/sngm3741/resort-crew/api/internal/public/application"
	publicdomain "github.com/sngm3741/resort-crew/api/internal/public/domain"
)

func (h *Handler) jobListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		filter := publicdomain.ListingFilter{
			SearchTerm: strings.TrimSpace(query.Get("q")),
			Province:   strings.TrimSpace(query.Get("province")),
			District:   strings.TrimSpace(query.Get("district")),
			Lodging:    publicdomain.ParseLodgingFilter(query.Get("lodging")),
			Facility:   publicdomain.CanonicalFacility(query.Get("facility")),
		}

		page, limit := common.PageParams(query)

		result, err := h.listings.List(ctx, filter, publicapp.Paging{Page: page, Limit: limit})
		if err != nil {
			common.WriteError(h.logger, w, err, "공고 목록을 불러오지 못했습니다")
			return
		}

		items := make([]jobSummaryResponse, 0, len(result.Data))
		for _, item := range result.Data {
			items = append(items, toJobSummaryResponse(item))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, jobListResponse{
			Data:       items,
			Pagination: result.Pagination,
		})
	}
}

func (h *Handler) jobDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "공고 ID가 지정되지 않았습니다"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		item, err := h.listings.Detail(ctx, id)
		if err != nil {
			common.WriteError(h.logger, w, err, "공고를 불러오지 못했습니다")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, toJobDetailResponse(*item))
	}
}

func (h *Handler) reviewSummaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employerID := strings.TrimSpace(chi.URLParam(r, "id"))
		if employerID == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "사업장 ID가 지정되지 않았습니다"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		summary, err := h.listings.ReviewSummary(ctx, employerID)
		if err != nil {
			common.WriteError(h.logger, w, err, "리뷰 요약을 불러오지 못했습니다")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, toReviewSummaryResponse(employerID, summary))
	}
}
