// Package repositories определяет интерфейсы доступа к хранилищам данных.
package repositories

import (
	"context"

	"gopostboard/internal/domain/entities"
)

// UserRepository определяет операции сохранения и поиска пользователей.
//
// Create возвращает entities.ErrUserAlreadyExists при нарушении уникальности
// username или email; вызывающий код различает этот случай от прочих ошибок
// хранилища через errors.Is.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*entities.User, error)

	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// FindByUsernameOrEmail трактует строку с символом '@' как email,
	// иначе как username. Это эвристика маршрутизации, а не валидация.
	FindByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*entities.User, error)

	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	UpdatePassword(ctx context.Context, id int64, passwordHash string) (*entities.User, error)
}
