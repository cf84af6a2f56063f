package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"committee-service/internal/service"
)

// Коды ошибок для клиента. Значения стабильны, фронтенд на них завязан.
const (
	codeUnknown           = -1
	codeJSON              = 1
	codeDuplicate         = 2
	codeCommitteeNotFound = 3
	codeUserNotFound      = 4
	codeBadRequest        = 5
)

// wireError сопоставляет вид ошибки с HTTP-статусом, кодом и сообщением для клиента.
func wireError(kind service.Kind) (status, code int, msg string) {
	switch kind {
	case service.KindSerialization:
		return http.StatusInternalServerError, codeJSON, "JSON error"
	case service.KindDuplicate:
		return http.StatusConflict, codeDuplicate, "Duplicate committee name"
	case service.KindCommitteeNotFound:
		return http.StatusNotFound, codeCommitteeNotFound, "Committee not found"
	case service.KindUserNotFound:
		return http.StatusNotFound, codeUserNotFound, "User not found"
	case service.KindBadRequest:
		return http.StatusBadRequest, codeBadRequest, "Bad request"
	default:
		return http.StatusInternalServerError, codeUnknown, "Unknown error"
	}
}

// writeError пишет конверт ошибки. Детали ошибки хранилища остаются только в логе.
func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	kind := service.KindOf(err)
	status, code, msg := wireError(kind)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.Log.Log(context.Background(), level, "handler error",
		slog.String("handler", handlerName),
		slog.String("kind", kind.String()),
		slog.Int("status", status),
		slog.Any("err", err),
	)

	body, mErr := json.Marshal(errorResponse{ErrorCode: code, DebugMsg: msg})
	if mErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeJSON сериализует ответ целиком до записи заголовков,
// чтобы ошибку сериализации можно было отдать конвертом с кодом 500.
func (h *Handler) writeJSON(w http.ResponseWriter, handlerName string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		h.writeError(w, handlerName, service.ErrSerialization(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return service.ErrBadRequest("invalid JSON")
	}
	return nil
}
