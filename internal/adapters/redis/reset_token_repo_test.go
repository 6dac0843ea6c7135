package redis_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisadapter "gopostboard/internal/adapters/redis"
	"gopostboard/internal/domain/entities"
)

func mockRedisServer(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)

	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})

	t.Cleanup(func() {
		_ = client.Close()
		s.Close()
	})

	return s, client
}

func TestResetTokenIssueAndResolve(t *testing.T) {
	s, client := mockRedisServer(t)
	ctx := context.Background()

	repo := redisadapter.NewResetTokenRepository(client)

	token, err := repo.Issue(ctx, 7, 3*24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Токен лежит под своим префиксом с выставленным TTL.
	key := redisadapter.ResetTokenPrefix + token
	value, err := s.Get(key)
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(7, 10), value)
	assert.Equal(t, 3*24*time.Hour, s.TTL(key))

	userID, err := repo.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestResetTokenTokensAreUnique(t *testing.T) {
	_, client := mockRedisServer(t)
	ctx := context.Background()

	repo := redisadapter.NewResetTokenRepository(client)

	first, err := repo.Issue(ctx, 7, time.Hour)
	require.NoError(t, err)
	second, err := repo.Issue(ctx, 7, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestResetTokenResolveUnknown(t *testing.T) {
	_, client := mockRedisServer(t)
	ctx := context.Background()

	repo := redisadapter.NewResetTokenRepository(client)

	_, err := repo.Resolve(ctx, "no-such-token")
	assert.ErrorIs(t, err, entities.ErrResetTokenNotFound)
}

func TestResetTokenExpiresAfterTTL(t *testing.T) {
	s, client := mockRedisServer(t)
	ctx := context.Background()

	repo := redisadapter.NewResetTokenRepository(client)

	token, err := repo.Issue(ctx, 7, time.Minute)
	require.NoError(t, err)

	s.FastForward(time.Minute + time.Second)

	_, err = repo.Resolve(ctx, token)
	assert.ErrorIs(t, err, entities.ErrResetTokenNotFound)
}

func TestResetTokenConsume(t *testing.T) {
	_, client := mockRedisServer(t)
	ctx := context.Background()

	repo := redisadapter.NewResetTokenRepository(client)

	token, err := repo.Issue(ctx, 7, time.Hour)
	require.NoError(t, err)

	require.NoError(t, repo.Consume(ctx, token))

	_, err = repo.Resolve(ctx, token)
	assert.ErrorIs(t, err, entities.ErrResetTokenNotFound)

	// Повторное удаление не является ошибкой.
	assert.NoError(t, repo.Consume(ctx, token))
}
