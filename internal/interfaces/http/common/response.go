package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/sngm3741/resort-crew/api/internal/apperr"
)

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(logger *log.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Printf("JSON エンコードに失敗: %v", err)
	}
}

// WriteError はドメインエラーの種類に応じてステータスコードを決定する。
// 想定外のエラーはログに残し fallback メッセージで 500 を返す。
func WriteError(logger *log.Logger, w http.ResponseWriter, err error, fallback string) {
	status, message := StatusForError(err)
	if status == http.StatusInternalServerError {
		if logger != nil {
			logger.Printf("%s: %v", fallback, err)
		}
		message = fallback
	}
	if status == http.StatusBadGateway && logger != nil {
		logger.Printf("upstream read failed: %v", err)
	}
	WriteJSON(logger, w, status, map[string]string{"error": message})
}

// StatusForError maps apperr kinds to HTTP status codes and client messages.
func StatusForError(err error) (int, string) {
	var (
		notFound   *apperr.NotFoundError
		transition *apperr.InvalidTransitionError
		conflict   *apperr.ConflictError
		validation *apperr.ValidationError
		upstream   *apperr.UpstreamReadError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, "요청한 리소스를 찾을 수 없습니다"
	case errors.As(err, &transition):
		return http.StatusConflict, fmt.Sprintf("현재 상태(%s)에서는 %s(으)로 변경할 수 없습니다", transition.From, transition.To)
	case errors.As(err, &conflict):
		return http.StatusConflict, conflict.Msg
	case errors.As(err, &validation):
		return http.StatusBadRequest, validation.Msg
	case errors.As(err, &upstream):
		return http.StatusBadGateway, "데이터를 불러오지 못했습니다. 잠시 후 다시 시도해 주세요"
	default:
		return http.StatusInternalServerError, ""
	}
}

// DecodeJSON はリクエストボディを上限付きでデコードする。
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, MaxRequestBody)
	defer body.Close()

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Invalid("body", "요청 본문이 비어 있습니다")
		}
		return apperr.Invalid("body", "요청 형식이 올바르지 않습니다")
	}
	return nil
}
