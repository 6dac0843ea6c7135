// Package services определяет интерфейсы вспомогательных сервисов.
package services

import "context"

// PasswordService определяет операции хэширования и проверки паролей.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)

	// Verify возвращает false без ошибки как при несовпадении пароля,
	// так и при некорректном формате сохраненного хэша: для вызывающего
	// кода оба случая означают отказ в аутентификации, а не сбой системы.
	Verify(ctx context.Context, password, hash string) bool
}
