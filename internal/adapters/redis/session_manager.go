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
	"gopostboard/internal/ports/services"
	"gopostboard/pkg/logger"
)

// SessionPrefix - пространство имен ключей сессий.
const SessionPrefix = "sess:"

// SessionManager реализует services.SessionManager поверх Redis.
// Сессия сохраняется в хранилище только после привязки пользователя:
// анонимные сессии существуют лишь в памяти запроса.
type SessionManager struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionManager создает новый менеджер сессий с указанным временем жизни.
func NewSessionManager(client *redis.Client, ttl time.Duration) services.SessionManager {
	return &SessionManager{client: client, ttl: ttl}
}

// Load возвращает сессию по идентификатору из cookie. Пустой или неизвестный
// идентификатор дает новую анонимную сессию: воспроизведение cookie после
// logout не восстанавливает прежнее состояние.
func (m *SessionManager) Load(ctx context.Context, sessionID string) (*entities.Session, error) {
	log := logger.Log(ctx).With(zap.String("service", "session"), zap.String("method", "Load"))

	if sessionID == "" {
		return &entities.Session{ID: uuid.NewString()}, nil
	}

	value, err := m.client.Get(ctx, SessionPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			log.Debug(ctx, "session not found, starting fresh")
			return &entities.Session{ID: uuid.NewString()}, nil
		}
		log.Error(ctx, "error loading session", zap.Error(err))
		return nil, fmt.Errorf("error loading session: %w", err)
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Error(ctx, "malformed session value", zap.Error(err))
		return nil, fmt.Errorf("malformed session value: %w", err)
	}

	return &entities.Session{ID: sessionID, UserID: userID}, nil
}

// Bind привязывает пользователя к сессии и сохраняет ее в Redis.
func (m *SessionManager) Bind(ctx context.Context, session *entities.Session, userID int64) error {
	log := logger.Log(ctx).With(zap.String("service", "session"), zap.String("method", "Bind"))

	err := m.client.Set(ctx, SessionPrefix+session.ID, strconv.FormatInt(userID, 10), m.ttl).Err()
	if err != nil {
		log.Error(ctx, "error storing session", zap.Error(err), zap.Int64("userID", userID))
		return fmt.Errorf("error storing session: %w", err)
	}

	session.UserID = userID
	session.Destroyed = false

	return nil
}

// Destroy завершает сессию на сервере. Session.Destroyed выставляется только
// при успешном удалении: по нему транспорт решает, очищать ли cookie.
func (m *SessionManager) Destroy(ctx context.Context, session *entities.Session) error {
	log := logger.Log(ctx).With(zap.String("service", "session"), zap.String("method", "Destroy"))

	if err := m.client.Del(ctx, SessionPrefix+session.ID).Err(); err != nil {
		log.Error(ctx, "error destroying session", zap.Error(err))
		return fmt.Errorf("error destroying session: %w", err)
	}

	session.UserID = 0
	session.Destroyed = true

	return nil
}
