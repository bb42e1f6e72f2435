package recruiting

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/sngm3741/resort-crew/api/internal/interfaces/http/common"
	recruitingapp "github.com/sngm3741/resort-crew/api/internal/recruiting/application"
)

func (h *Handler) applicationSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}
		postingID, ok := h.pathID(w, r, "공고")
		if !ok {
			return
		}

		var req candidateRequest
		if err := common.DecodeJSON(w, r, &req); err != nil {
			common.WriteError(h.logger, w, err, "지원서를 읽지 못했습니다")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		name := strings.TrimSpace(user.Name)
		if name == "" {
			name = user.Username
		}
		app, err := h.applications.Submit(ctx, recruitingapp.SubmitApplicationCommand{
			PostingID:     postingID,
			JobseekerID:   user.ID,
			JobseekerName: name,
			Details:       req.toDomain(),
		})
		if err != nil {
			common.WriteError(h.logger, w, err, "지원서 제출에 실패했습니다")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusCreated, toApplicationResponse(*app))
	}
}

func (h *Handler) myApplicationListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		page, err := h.applications.ListForJobseeker(ctx, user.ID, pagingFromRequest(r))
		if err != nil {
			common.WriteError(h.logger, w, err, "지원 내역을 불러오지 못했습니다")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, toApplicationListResponse(page))
	}
}

func (h *Handler) applicationDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}
		id, ok := h.pathID(w, r, "지원서")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		app, err := h.applications.Get(ctx, user.ID, id)
		if err != nil {
			common.WriteError(h.logger, w, err, "지원서를 불러오지 못했습니다")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, toApplicationResponse(*app))
	}
}

func (h *Handler) applicationUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}
		id, ok := h.pathID(w, r, "지원서")
		if !ok {
			return
		}

		var req candidateRequest
		if err := common.DecodeJSON(w, r, &req); err != nil {
			common.WriteError(h.logger, w, err, "지원서를 읽지 못했습니다")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		app, err := h.applications.Update(ctx, user.ID, id, req.toDomain())
		if err != nil {
			common.WriteError(h.logger, w, err, "지원서 수정에 실패했습니다")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, toApplicationResponse(*app))
	}
}
