// Package dto содержит структуры запросов и ответов HTTP API.
package dto

import "gopostboard/internal/domain/entities"

// RegisterRequest представляет запрос на регистрацию пользователя.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest представляет запрос на вход пользователя.
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// ForgotPasswordRequest представляет запрос на сброс пароля.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ChangePasswordRequest представляет запрос на смену пароля по токену.
type ChangePasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// UserResponse содержит либо пользователя, либо список ошибок полей.
type UserResponse struct {
	Errors []entities.FieldError `json:"errors,omitempty"`
	User   *entities.User        `json:"user,omitempty"`
}

// LogoutResponse сообщает, была ли уничтожена сессия.
type LogoutResponse struct {
	Success bool `json:"success"`
}

// ForgotPasswordResponse подтверждает прием запроса на сброс пароля.
type ForgotPasswordResponse struct {
	Success bool `json:"success"`
}
