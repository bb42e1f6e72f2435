package recruiting

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/resort-crew/api/internal/apperr"
	"github.com/sngm3741/resort-crew/api/internal/interfaces/http/common"
	recruitingapp "github.com/sngm3741/resort-crew/api/internal/recruiting/application"
)

func pagingFromRequest(r *http.Request) recruitingapp.Paging {
	page, limit := common.PageParams(r.URL.Query())
	return recruitingapp.Paging{Page: page, Limit: limit}
}

func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request) (common.AuthenticatedUser, bool) {
	user, ok := common.UserFromContext(r.Context())
	if !ok || strings.TrimSpace(user.ID) == "" {
		common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "인증이 필요합니다"})
		return common.AuthenticatedUser{}, false
	}
	return user, true
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, label string) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": label + " ID가 지정되지 않았습니다"})
		return "", false
	}
	return id, true
}

func checkLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return apperr.Invalid(field, "입력 가능한 글자 수를 초과했습니다")
	}
	return nil
}
