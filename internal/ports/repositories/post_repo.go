package repositories

import (
	"context"

	"gopostboard/internal/domain/entities"
)

// PostRepository определяет операции над записями.
type PostRepository interface {
	Create(ctx context.Context, title string) (*entities.Post, error)

	FindByID(ctx context.Context, id int64) (*entities.Post, error)

	List(ctx context.Context) ([]*entities.Post, error)

	UpdateTitle(ctx context.Context, id int64, title string) (*entities.Post, error)

	Delete(ctx context.Context, id int64) error
}
