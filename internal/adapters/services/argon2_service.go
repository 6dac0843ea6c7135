// Package services содержит реализации вспомогательных сервисов.
package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/argon2"

	svc "gopostboard/internal/ports/services"
	"gopostboard/pkg/logger"
)

// Параметры argon2id согласно рекомендациям OWASP.
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4
	argon2SaltLen = 16
	argon2KeyLen  = 32
)

const (
	errMsgEmptyPassword        = "password cannot be empty"
	errMsgFailedToGenerateSalt = "failed to generate salt"
)

// ServiceArgon2 реализует интерфейс PasswordService на базе argon2id.
type ServiceArgon2 struct{}

// NewArgon2 создает новый экземпляр сервиса argon2id.
func NewArgon2() svc.PasswordService {
	return &ServiceArgon2{}
}

// Hash хэширует пароль с помощью argon2id. Соль генерируется случайно и
// встраивается в результат в формате PHC, поэтому два хэша одного пароля
// различаются.
func (s *ServiceArgon2) Hash(_ context.Context, password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%s", errMsgEmptyPassword)
	}

	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%s: %w", errMsgFailedToGenerateSalt, err)
	}

	hash := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2Memory,
		argon2Time,
		argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

// Verify проверяет соответствие пароля хэшу. Некорректный формат хэша дает
// false, а не ошибку: для вызывающего кода это отказ в аутентификации,
// а не сбой системы.
func (s *ServiceArgon2) Verify(ctx context.Context, password, encodedHash string) bool {
	if password == "" || encodedHash == "" {
		return false
	}

	salt, expectedHash, time, memory, threads, ok := decodeHash(ctx, encodedHash)
	if !ok {
		return false
	}

	computed := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(expectedHash)))

	return subtle.ConstantTimeCompare(computed, expectedHash) == 1
}

// decodeHash разбирает PHC-представление argon2id хэша.
func decodeHash(ctx context.Context, encodedHash string) (salt, hash []byte, time, memory uint32, threads uint8, ok bool) {
	log := logger.Log(ctx).With(zap.String("service", "password"))

	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		log.Debug(ctx, "unsupported password hash format")
		return nil, nil, 0, 0, 0, false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, 0, 0, 0, false
	}

	var parallelism uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &parallelism); err != nil {
		return nil, nil, 0, 0, 0, false
	}
	if parallelism == 0 || parallelism > 255 {
		return nil, nil, 0, 0, 0, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, false
	}

	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(hash) == 0 {
		return nil, nil, 0, 0, 0, false
	}

	return salt, hash, time, memory, uint8(parallelism), true
}
