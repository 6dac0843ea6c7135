// Package api определяет интерфейсы бизнес-операций сервиса.
package api

import (
	"context"

	"gopostboard/internal/domain/entities"
)

// AuthUseCase определяет операции аутентификации и восстановления пароля.
//
// Ошибки полей возвращаются как данные вторым значением; непустой список
// означает отказ операции по вине ввода. Последнее значение error
// зарезервировано для сбоев хранилищ и прочих системных ошибок.
type AuthUseCase interface {
	Register(ctx context.Context, username, email, password string) (*entities.User, []entities.FieldError, error)

	Login(ctx context.Context, session *entities.Session, usernameOrEmail, password string) (*entities.User, []entities.FieldError, error)

	// Me возвращает текущего пользователя сессии или nil для анонимной
	// сессии и для учетной записи, удаленной после входа.
	Me(ctx context.Context, session *entities.Session) (*entities.User, error)

	// Logout возвращает false, если сессию не удалось завершить на сервере;
	// это не ошибка операции, а сигнал не очищать cookie.
	Logout(ctx context.Context, session *entities.Session) bool

	// ForgotPassword всегда отвечает true для корректно обработанного
	// запроса, не раскрывая существование учетной записи.
	ForgotPassword(ctx context.Context, email string) (bool, error)

	ChangePassword(ctx context.Context, session *entities.Session, token, newPassword string) (*entities.User, []entities.FieldError, error)
}
