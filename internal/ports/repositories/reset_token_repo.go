package repositories

import (
	"context"
	"time"
)

// ResetTokenRepository управляет жизненным циклом токенов сброса пароля
// в key-value хранилище.
//
// Жизненный цикл токена: выдан (Issue) -> использован (Consume) или истек
// по TTL. Возврата из конечных состояний нет.
type ResetTokenRepository interface {
	// Issue генерирует случайный непрозрачный токен и сохраняет связь
	// токен -> userID с указанным временем жизни.
	Issue(ctx context.Context, userID int64, ttl time.Duration) (string, error)

	// Resolve возвращает userID по токену или entities.ErrResetTokenNotFound,
	// если токен отсутствует или истек.
	Resolve(ctx context.Context, token string) (int64, error)

	// Consume удаляет токен. Удаление отсутствующего токена не является ошибкой.
	Consume(ctx context.Context, token string) error
}
