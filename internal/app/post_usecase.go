package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gopostboard/internal/domain/entities"
	"gopostboard/internal/ports/api"
	"gopostboard/internal/ports/repositories"
	"gopostboard/pkg/logger"
)

// Названия методов для логирования.
const (
	methodCreatePost = "CreatePost"
	methodGetPost    = "GetPost"
	methodListPosts  = "ListPosts"
	methodUpdatePost = "UpdatePost"
	methodDeletePost = "DeletePost"
)

// Сообщения журнала.
const (
	msgPostCreated      = "пост создан"
	msgPostUpdated      = "пост обновлён"
	msgPostDeleted      = "пост удалён"
	msgCreatePostFailed = "не удалось создать пост"
	msgFindPostFailed   = "не удалось найти пост"
	msgListPostsFailed  = "не удалось получить список постов"
	msgUpdatePostFailed = "не удалось обновить пост"
	msgDeletePostFailed = "не удалось удалить пост"
)

// Контексты ошибок.
const (
	errCtxCreatePost = "ошибка создания поста"
	errCtxFindPost   = "ошибка поиска поста"
	errCtxListPosts  = "ошибка получения списка постов"
	errCtxUpdatePost = "ошибка обновления поста"
	errCtxDeletePost = "ошибка удаления поста"
)

// PostUseCaseImpl реализует операции над постами.
type PostUseCaseImpl struct {
	postRepo repositories.PostRepository
}

// NewPostUseCase создает новый экземпляр PostUseCaseImpl.
func NewPostUseCase(postRepo repositories.PostRepository) api.PostUseCase {
	return &PostUseCaseImpl{postRepo: postRepo}
}

// CreatePost создает новый пост.
func (p *PostUseCaseImpl) CreatePost(ctx context.Context, title string) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreatePost))

	post, err := p.postRepo.Create(ctx, title)
	if err != nil {
		log.Error(ctx, msgCreatePostFailed, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatePost, err)
	}

	log.Info(ctx, msgPostCreated, zap.Int64("post_id", post.ID))

	return post, nil
}

// GetPost возвращает пост по идентификатору или nil, если он не найден.
func (p *PostUseCaseImpl) GetPost(ctx context.Context, id int64) (*entities.Post, error) {
	post, err := p.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrPostNotFound) {
			return nil, nil
		}

		logger.Log(ctx).With(zap.String("method", methodGetPost)).Error(ctx, msgFindPostFailed, zap.Error(err))

		return nil, fmt.Errorf("%s: %w", errCtxFindPost, err)
	}

	return post, nil
}

// ListPosts возвращает все посты.
func (p *PostUseCaseImpl) ListPosts(ctx context.Context) ([]*entities.Post, error) {
	posts, err := p.postRepo.List(ctx)
	if err != nil {
		logger.Log(ctx).With(zap.String("method", methodListPosts)).Error(ctx, msgListPostsFailed, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListPosts, err)
	}

	return posts, nil
}

// UpdatePost меняет заголовок поста. nil без ошибки означает, что поста нет.
func (p *PostUseCaseImpl) UpdatePost(ctx context.Context, id int64, title string) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdatePost))

	post, err := p.postRepo.UpdateTitle(ctx, id, title)
	if err != nil {
		if errors.Is(err, entities.ErrPostNotFound) {
			return nil, nil
		}

		log.Error(ctx, msgUpdatePostFailed, zap.Error(err))

		return nil, fmt.Errorf("%s: %w", errCtxUpdatePost, err)
	}

	log.Info(ctx, msgPostUpdated, zap.Int64("post_id", post.ID))

	return post, nil
}

// DeletePost удаляет пост. Отсутствие записи не считается ошибкой.
func (p *PostUseCaseImpl) DeletePost(ctx context.Context, id int64) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", methodDeletePost))

	if err := p.postRepo.Delete(ctx, id); err != nil {
		log.Error(ctx, msgDeletePostFailed, zap.Error(err))
		return false, fmt.Errorf("%s: %w", errCtxDeletePost, err)
	}

	log.Info(ctx, msgPostDeleted, zap.Int64("post_id", id))

	return true, nil
}
