package recruiting

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/sngm3741/resort-crew/api/internal/interfaces/http/common"
	"github.com/sngm3741/resort-crew/api/internal/recruiting/domain"
)

func (h *Handler) employerApplicationListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		filter := domain.ApplicationFilter{
			PostingID: strings.TrimSpace(query.Get("jobPostId")),
			Query:     strings.TrimSpace(query.Get("q")),
		}
		if raw := strings.TrimSpace(query.Get("status")); raw != "" {
			status, err := domain.ParseStatus(strings.ToLower(raw))
			if err != nil {
				common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "지원 상태 값이 올바르지 않습니다"})
				return
			}
			filter.Status = status
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		page, err := h.applications.ListForEmployer(ctx, user.ID, filter, pagingFromRequest(r))
		if err != nil {
			common.WriteError(h.logger, w, err, "지원자 목록을 불러오지 못했습니다")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, toApplicationListResponse(page))
	}
}

func (h *Handler) interviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}
		id, ok := h.pathID(w, r, "지원서")
		if !ok {
			return
		}

		var req interviewRequest
		if err := common.DecodeJSON(w, r, &req); err != nil {
			common.WriteError(h.logger, w, err, "면접 기록을 읽지 못했습니다")
			return
		}
		note := strings.TrimSpace(req.Note)
		if err := checkLength("note", note, common.MaxReasonRunes); err != nil {
			common.WriteError(h.logger, w, err, "면접 기록 저장에 실패했습니다")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		app, err := h.applications.RecordInterview(ctx, user.ID, id, domain.InterviewRecord{
			Note:          note,
			ContactInfo:   strings.TrimSpace(req.ContactInfo),
			InterviewDate: req.InterviewDate,
		})
		if err != nil {
			common.WriteError(h.logger, w, err, "면접 기록 저장에 실패했습니다")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, toApplicationResponse(*app))
	}
}

func (h *Handler) decisionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}
		id, ok := h.pathID(w, r, "지원서")
		if !ok {
			return
		}

		var req decisionRequest
		if err := common.DecodeJSON(w, r, &req); err != nil {
			common.WriteError(h.logger, w, err, "결정 내용을 읽지 못했습니다")
			return
		}
		reason := strings.TrimSpace(req.Reason)
		if err := checkLength("reason", reason, common.MaxReasonRunes); err != nil {
			common.WriteError(h.logger, w, err, "결정 처리에 실패했습니다")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		app, err := h.applications.Decide(ctx, user.ID, id, domain.Decision{
			Result:       domain.Status(strings.ToLower(strings.TrimSpace(req.Decision))),
			Reason:       reason,
			OfferDetails: strings.TrimSpace(req.OfferDetails),
		})
		if err != nil {
			common.WriteError(h.logger, w, err, "결정 처리에 실패했습니다")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, toApplicationResponse(*app))
	}
}

func (h *Handler) postingActiveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}
		id, ok := h.pathID(w, r, "공고")
		if !ok {
			return
		}

		var req activeRequest
		if err := common.DecodeJSON(w, r, &req); err != nil {
			common.WriteError(h.logger, w, err, "요청을 읽지 못했습니다")
			return
		}
		if req.IsActive == nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "isActive 값을 지정해주세요"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.applications.SetPostingActive(ctx, user.ID, id, *req.IsActive); err != nil {
			common.WriteError(h.logger, w, err, "공고 상태 변경에 실패했습니다")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"id": id, "isActive": *req.IsActive})
	}
}
