package model

// User описывает профиль пользователя, который отдаётся по id как есть.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}
