package http

import (
	"bytes"
	"log/slog"
	"net/http"

	"committee-service/internal/page"
)

func (h *Handler) handleTestPage(w http.ResponseWriter, r *http.Request) {
	n := h.Visits.Next()

	// Рендерим в буфер, чтобы при ошибке не отдать половину страницы.
	var buf bytes.Buffer
	if err := h.renderVisit(n).Render(r.Context(), &buf); err != nil {
		h.Log.Error("render test page", slog.Any("err", err))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(page.ErrorHTML))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
