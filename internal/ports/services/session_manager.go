package services

import (
	"context"

	"gopostboard/internal/domain/entities"
)

// SessionManager управляет жизненным циклом сессий на сервере.
type SessionManager interface {
	// Load возвращает сессию по идентификатору из cookie.
	// Пустой или неизвестный идентификатор дает новую анонимную сессию.
	Load(ctx context.Context, sessionID string) (*entities.Session, error)

	// Bind привязывает аутентифицированного пользователя к сессии
	// и сохраняет ее в хранилище.
	Bind(ctx context.Context, session *entities.Session, userID int64) error

	// Destroy завершает сессию на сервере. Ошибка хранилища возвращается
	// вызывающему: cookie можно очищать только при успешном завершении.
	Destroy(ctx context.Context, session *entities.Session) error
}
