package http

import (
	"net/http"
)

func (h *Handler) handleCommitteeList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "committee_list"

	committees, err := h.Committees.List(r.Context())
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, handlerName, committees)
}

func (h *Handler) handleCommitteeAdd(w http.ResponseWriter, r *http.Request) {
	const handlerName = "committee_add"

	var req addCommitteeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := ValidateAddCommitteeRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	committees, err := h.Committees.Add(r.Context(), *req.FullName, *req.ShortName)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, handlerName, committees)
}

func (h *Handler) handleCommitteeRename(w http.ResponseWriter, r *http.Request) {
	const handlerName = "committee_rename"

	var req renameCommitteeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := ValidateRenameCommitteeRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	committees, err := h.Committees.Rename(r.Context(), *req.ID, *req.NewFullName, *req.NewShortName)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, handlerName, committees)
}

func (h *Handler) handleCommitteeDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "committee_delete"

	var req deleteCommitteeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}
	if err := ValidateDeleteCommitteeRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	committees, err := h.Committees.Delete(r.Context(), *req.ID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, handlerName, committees)
}
