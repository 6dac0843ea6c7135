package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gopostboard/internal/domain/entities"
	"gopostboard/internal/ports/repositories"
	"gopostboard/pkg/logger"
)

// postColumns - список колонок таблицы posts, возвращаемых каждым запросом.
const postColumns = "id, title, created_at, updated_at"

// PostRepository реализует интерфейс repositories.PostRepository для работы с Postgres.
type PostRepository struct {
	pool PgxPoolInterface
}

// NewPostRepository создает новый экземпляр репозитория записей.
func NewPostRepository(pool PgxPoolInterface) repositories.PostRepository {
	return &PostRepository{pool: pool}
}

func scanPost(row pgx.Row) (*entities.Post, error) {
	var post entities.Post
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck // вызывающий метод добавляет контекст
	}
	return &post, nil
}

// Create создает новую запись с указанным заголовком.
func (r *PostRepository) Create(ctx context.Context, title string) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "Create"))

	query := `
        INSERT INTO posts (title)
        VALUES ($1)
        RETURNING ` + postColumns + `
    `

	post, err := scanPost(r.pool.QueryRow(ctx, query, title))
	if err != nil {
		log.Error(ctx, "error creating post", zap.Error(err))
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	return post, nil
}

// FindByID находит запись по идентификатору.
func (r *PostRepository) FindByID(ctx context.Context, id int64) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "FindByID"))

	query := `
        SELECT ` + postColumns + `
        FROM posts
        WHERE id = $1
    `

	post, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "post not found", zap.Int64("id", id))
			return nil, entities.ErrPostNotFound
		}
		log.Error(ctx, "error finding post by id", zap.Error(err))
		return nil, fmt.Errorf("error querying post by id: %w", err)
	}

	return post, nil
}

// List возвращает все записи в порядке создания.
func (r *PostRepository) List(ctx context.Context) ([]*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "List"))

	query := `
        SELECT ` + postColumns + `
        FROM posts
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error listing posts", zap.Error(err))
		return nil, fmt.Errorf("error querying posts: %w", err)
	}
	defer rows.Close()

	var posts []*entities.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Error(ctx, "error scanning post row", zap.Error(err))
			return nil, fmt.Errorf("error scanning post row: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating post rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

// UpdateTitle обновляет заголовок записи.
func (r *PostRepository) UpdateTitle(ctx context.Context, id int64, title string) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "UpdateTitle"))

	query := `
        UPDATE posts
        SET title = $2, updated_at = now()
        WHERE id = $1
        RETURNING ` + postColumns + `
    `

	post, err := scanPost(r.pool.QueryRow(ctx, query, id, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "post not found for update", zap.Int64("id", id))
			return nil, entities.ErrPostNotFound
		}
		log.Error(ctx, "error updating post", zap.Error(err))
		return nil, fmt.Errorf("error updating post: %w", err)
	}

	return post, nil
}

// Delete удаляет запись. Отсутствие записи не считается ошибкой.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "Delete"))

	query := `
        DELETE FROM posts
        WHERE id = $1
    `

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		log.Error(ctx, "error deleting post", zap.Error(err))
		return fmt.Errorf("error deleting post: %w", err)
	}

	return nil
}
