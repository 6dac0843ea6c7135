// Package posts содержит HTTP обработчики для работы с постами.
package posts

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gopostboard/internal/app/dto"
	"gopostboard/internal/ports/api"
	"gopostboard/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerCreatePost = "posts handler: create post"
	LogHandlerGetPost    = "posts handler: get post"
	LogHandlerListPosts  = "posts handler: list posts"
	LogHandlerUpdatePost = "posts handler: update post"
	LogHandlerDeletePost = "posts handler: delete post"

	ErrorInvalidRequest       = "invalid request"
	ErrorInvalidPostID        = "invalid post id"
	ErrorPostNotFound         = "Post not found"
	ErrorFailedToServeRequest = "failed to serve request"
	ErrorInternalServer       = "Internal Server Error"
)

// Вспомогательная функция для обработки ошибок HTTP.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Handler содержит HTTP обработчики для постов.
type Handler struct {
	postUseCase api.PostUseCase
}

// NewHandler создает новый экземпляр обработчика постов.
func NewHandler(postUseCase api.PostUseCase) *Handler {
	return &Handler{
		postUseCase: postUseCase,
	}
}

func parsePostID(ctx fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("post_id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing post id: %w", err)
	}
	return id, nil
}

// CreatePost обрабатывает запрос на создание поста.
func (h *Handler) CreatePost(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreatePost)

	var req dto.CreatePostRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Title == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "title is required")
	}

	post, err := h.postUseCase.CreatePost(requestCtx, req.Title)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.PostResponse{Post: post}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetPost возвращает пост по идентификатору.
func (h *Handler) GetPost(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetPost)

	id, err := parsePostID(ctx)
	if err != nil {
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidPostID)
	}

	post, err := h.postUseCase.GetPost(requestCtx, id)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if post == nil {
		return sendErrorResponse(ctx, http.StatusNotFound, ErrorPostNotFound)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.PostResponse{Post: post}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListPosts возвращает все посты.
func (h *Handler) ListPosts(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListPosts)

	posts, err := h.postUseCase.ListPosts(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.PostListResponse{Posts: posts}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UpdatePost меняет заголовок поста.
func (h *Handler) UpdatePost(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdatePost)

	id, err := parsePostID(ctx)
	if err != nil {
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidPostID)
	}

	var req dto.UpdatePostRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Title == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "title is required")
	}

	post, err := h.postUseCase.UpdatePost(requestCtx, id, req.Title)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if post == nil {
		return sendErrorResponse(ctx, http.StatusNotFound, ErrorPostNotFound)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.PostResponse{Post: post}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// DeletePost удаляет пост.
func (h *Handler) DeletePost(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDeletePost)

	id, err := parsePostID(ctx)
	if err != nil {
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidPostID)
	}

	success, err := h.postUseCase.DeletePost(requestCtx, id)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.DeletePostResponse{Success: success}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
