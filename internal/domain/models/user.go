package models

// User представляет текущего пользователя сессии
type User struct {
	Email string `json:"email"`
	Token string `json:"token"`
}
