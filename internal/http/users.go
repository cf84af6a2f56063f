package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleUserGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_get"

	id, err := ParseUserID(chi.URLParam(r, "user_id"))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	user, err := h.Users.GetUser(r.Context(), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, handlerName, user)
}
