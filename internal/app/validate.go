package app

import (
	"strings"

	"gopostboard/internal/domain/entities"
)

// Имена полей ввода в ошибках валидации.
const (
	fieldUsername        = "username"
	fieldEmail           = "email"
	fieldPassword        = "password"
	fieldUsernameOrEmail = "usernameOrEmail"
	fieldNewPassword     = "newPassword"
	fieldToken           = "token"
)

// Минимальные длины полей регистрации.
const (
	minUsernameLength = 2
	minPasswordLength = 3
)

// Сообщения об ошибках валидации, видимые пользователю.
const (
	msgUsernameTooShort = "Username must be greater than 2"
	msgUsernameHasAt    = `Username cannot have "@" sign`
	msgInvalidEmail     = "Invalid email"
	msgPasswordTooShort = "Password must be greater than 3"
)

// validateRegister проверяет поля регистрации в фиксированном порядке
// и останавливается на первой ошибке. nil означает успешную проверку.
func validateRegister(username, email, password string) []entities.FieldError {
	if len(username) <= minUsernameLength {
		return entities.NewFieldError(fieldUsername, msgUsernameTooShort)
	}

	if strings.Contains(username, "@") {
		return entities.NewFieldError(fieldUsername, msgUsernameHasAt)
	}

	if !strings.Contains(email, "@") {
		return entities.NewFieldError(fieldEmail, msgInvalidEmail)
	}

	if len(password) <= minPasswordLength {
		return entities.NewFieldError(fieldPassword, msgPasswordTooShort)
	}

	return nil
}
