// Package redis реализует хранение сессий и токенов сброса пароля в Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gopostboard/internal/domain/entities"
	"gopostboard/internal/ports/repositories"
	"gopostboard/pkg/logger"
)

// ResetTokenPrefix - пространство имен ключей токенов сброса пароля.
const ResetTokenPrefix = "forgot-password:"

// ResetTokenRepository реализует repositories.ResetTokenRepository поверх Redis.
//
// Resolve и Consume выполняются двумя отдельными командами; два конкурентных
// запроса могут успеть прочитать один токен до того, как первый из них его
// удалит. Окно закрывается атомарным GETDEL, если потребуется ужесточить
// гарантию одноразовости.
type ResetTokenRepository struct {
	client *redis.Client
}

// NewResetTokenRepository создает новый репозиторий токенов сброса пароля.
func NewResetTokenRepository(client *redis.Client) repositories.ResetTokenRepository {
	return &ResetTokenRepository{client: client}
}

// Issue генерирует случайный токен и сохраняет связь токен -> userID с TTL.
func (r *ResetTokenRepository) Issue(ctx context.Context, userID int64, ttl time.Duration) (string, error) {
	log := logger.Log(ctx).With(zap.String("repository", "reset_token"), zap.String("method", "Issue"))

	token := uuid.NewString()

	err := r.client.Set(ctx, ResetTokenPrefix+token, strconv.FormatInt(userID, 10), ttl).Err()
	if err != nil {
		log.Error(ctx, "error storing reset token", zap.Error(err), zap.Int64("userID", userID))
		return "", fmt.Errorf("error storing reset token: %w", err)
	}

	return token, nil
}

// Resolve возвращает userID по токену.
func (r *ResetTokenRepository) Resolve(ctx context.Context, token string) (int64, error) {
	log := logger.Log(ctx).With(zap.String("repository", "reset_token"), zap.String("method", "Resolve"))

	value, err := r.client.Get(ctx, ResetTokenPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			log.Debug(ctx, "reset token not found")
			return 0, entities.ErrResetTokenNotFound
		}
		log.Error(ctx, "error resolving reset token", zap.Error(err))
		return 0, fmt.Errorf("error resolving reset token: %w", err)
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Error(ctx, "malformed reset token value", zap.Error(err))
		return 0, fmt.Errorf("malformed reset token value: %w", err)
	}

	return userID, nil
}

// Consume удаляет токен. Удаление отсутствующего ключа не является ошибкой.
func (r *ResetTokenRepository) Consume(ctx context.Context, token string) error {
	log := logger.Log(ctx).With(zap.String("repository", "reset_token"), zap.String("method", "Consume"))

	if err := r.client.Del(ctx, ResetTokenPrefix+token).Err(); err != nil {
		log.Error(ctx, "error consuming reset token", zap.Error(err))
		return fmt.Errorf("error consuming reset token: %w", err)
	}

	return nil
}
