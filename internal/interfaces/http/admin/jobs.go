package admin

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/sngm3741/resort-crew/api/internal/admin/application"
	"github.com/sngm3741/resort-crew/api/internal/interfaces/http/common"
)

func (h *Handler) jobListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := adminapp.PostingFilter{
			Status:     strings.TrimSpace(query.Get("status")),
			EmployerID: strings.TrimSpace(query.Get("employerId")),
			Keyword:    strings.TrimSpace(query.Get("keyword")),
		}
		page, limit := common.PageParams(query)

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		result, err := h.moderation.List(ctx, filter, adminapp.Paging{Page: page, Limit: limit})
		if err != nil {
			common.WriteError(h.logger, w, err, "공고 목록을 불러오지 못했습니다")
			return
		}

		items := make([]adminJobResponse, 0, len(result.Data))
		for _, posting := range result.Data {
			items = append(items, toAdminJobResponse(posting))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, adminJobListResponse{Data: items, Pagination: result.Pagination})
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

		posting, err := h.moderation.Detail(ctx, id)
		if err != nil {
			common.WriteError(h.logger, w, err, "공고를 불러오지 못했습니다")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, toAdminJobResponse(*posting))
	}
}

func (h *Handler) jobModerateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "공고 ID가 지정되지 않았습니다"})
			return
		}

		var req moderateRequest
		if err := common.DecodeJSON(w, r, &req); err != nil {
			common.WriteError(h.logger, w, err, "요청을 읽지 못했습니다")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		posting, err := h.moderation.Moderate(ctx, id, adminapp.ModeratePostingCommand{
			Status:   req.Status,
			IsHidden: req.IsHidden,
		})
		if err != nil {
			common.WriteError(h.logger, w, err, "공고 심사 처리에 실패했습니다")
			return
		}
		h.logger.Printf("admin moderated posting id=%s status=%s hidden=%t", posting.ID, posting.Status, posting.Hidden())
		common.WriteJSON(h.logger, w, http.StatusOK, toAdminJobResponse(*posting))
	}
}
