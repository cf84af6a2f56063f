package http

import (
	"strconv"

	"committee-service/internal/service"
)

// ValidateAddCommitteeRequest POST /api/committees — тело запроса
func ValidateAddCommitteeRequest(req addCommitteeRequest) error {
	if req.FullName == nil {
		return service.ErrBadRequest("full_name is required")
	}
	if req.ShortName == nil {
		return service.ErrBadRequest("short_name is required")
	}
	return nil
}

// ValidateRenameCommitteeRequest POST /api/rename_committees — тело запроса
func ValidateRenameCommitteeRequest(req renameCommitteeRequest) error {
	if req.ID == nil {
		return service.ErrBadRequest("id is required")
	}
	if req.NewFullName == nil {
		return service.ErrBadRequest("new_full_name is required")
	}
	if req.NewShortName == nil {
		return service.ErrBadRequest("new_short_name is required")
	}
	return nil
}

// ValidateDeleteCommitteeRequest POST /api/delete_committee — тело запроса
func ValidateDeleteCommitteeRequest(req deleteCommitteeRequest) error {
	if req.ID == nil {
		return service.ErrBadRequest("id is required")
	}
	return nil
}

// ParseUserID разбирает path-параметр user_id.
func ParseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, service.ErrBadRequest("user_id must be an integer")
	}
	return id, nil
}
