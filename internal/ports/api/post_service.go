package api

import (
	"context"

	"gopostboard/internal/domain/entities"
)

// PostUseCase определяет CRUD-операции над записями.
type PostUseCase interface {
	CreatePost(ctx context.Context, title string) (*entities.Post, error)

	// GetPost возвращает nil без ошибки, если запись не найдена.
	GetPost(ctx context.Context, id int64) (*entities.Post, error)

	ListPosts(ctx context.Context) ([]*entities.Post, error)

	// UpdatePost возвращает nil без ошибки, если запись не найдена.
	UpdatePost(ctx context.Context, id int64, title string) (*entities.Post, error)

	// DeletePost всегда отвечает true при успешном обращении к хранилищу,
	// независимо от того, существовала ли запись.
	DeletePost(ctx context.Context, id int64) (bool, error)
}
