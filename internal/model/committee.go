// Package model содержит доменные структуры для комитетов и пользователей
package model

// Committee описывает активный комитет с полным и кратким названием.
// Признак мягкого удаления живёт только в хранилище: наружу отдаются лишь активные записи.
type Committee struct {
	ID        int64  `json:"id"`
	FullName  string `json:"full_name"`
	ShortName string `json:"short_name"`
}
