// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

// Поля-указатели позволяют отличить отсутствующее поле от пустой строки или нуля.

type addCommitteeRequest struct {
	FullName  *string `json:"full_name"`
	ShortName *string `json:"short_name"`
}

type renameCommitteeRequest struct {
	ID           *int64  `json:"id"`
	NewFullName  *string `json:"new_full_name"`
	NewShortName *string `json:"new_short_name"`
}

type deleteCommitteeRequest struct {
	ID *int64 `json:"id"`
}

type errorResponse struct {
	ErrorCode int    `json:"error_code"`
	DebugMsg  string `json:"debug_msg"`
}
