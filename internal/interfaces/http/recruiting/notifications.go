package recruiting

import (
	"context"
	"net/http"
	"time"

	"github.com/sngm3741/resort-crew/api/internal/interfaces/http/common"
)

func (h *Handler) notificationListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := h.notifications.List(ctx, user.ID, pagingFromRequest(r))
		if err != nil {
			common.WriteError(h.logger, w, err, "알림을 불러오지 못했습니다")
			return
		}

		items := make([]notificationResponse, 0, len(list.Data))
		for _, n := range list.Data {
			items = append(items, toNotificationResponse(n))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, notificationListResponse{
			Data:       items,
			Pagination: list.Pagination,
			Unread:     list.Unread,
		})
	}
}

func (h *Handler) notificationReadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.requireUser(w, r)
		if !ok {
			return
		}
		id, ok := h.pathID(w, r, "알림")
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		n, err := h.notifications.MarkAsRead(ctx, user.ID, id)
		if err != nil {
			common.WriteError(h.logger, w, err, "알림 상태 변경에 실패했습니다")
			return
		}
		common.WriteJSON(h.logger, w, http.StatusOK, toNotificationResponse(*n))
	}
}
