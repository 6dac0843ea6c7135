// Package auth содержит HTTP обработчики для работы с учетными записями.
package auth

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gopostboard/internal/adapters/http/middleware"
	"gopostboard/internal/app/dto"
	"gopostboard/internal/ports/api"
	"gopostboard/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister       = "auth handler: register"
	LogHandlerLogin          = "auth handler: login"
	LogHandlerMe             = "auth handler: me"
	LogHandlerLogout         = "auth handler: logout"
	LogHandlerForgotPassword = "auth handler: forgot password"
	LogHandlerChangePassword = "auth handler: change password"

	ErrorInvalidRequest       = "invalid request"
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

// Handler содержит HTTP обработчики для учетных записей.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика учетных записей.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
// Ошибки валидации возвращаются в теле ответа, а не статусом.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	user, fieldErrs, err := h.authUseCase.Register(requestCtx, req.Username, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if fieldErrs != nil {
		if err := ctx.Status(http.StatusOK).JSON(dto.UserResponse{Errors: fieldErrs}); err != nil {
			return fmt.Errorf("sending response: %w", err)
		}
		return nil
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.UserResponse{User: user}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	session := middleware.SessionFromCtx(ctx)

	user, fieldErrs, err := h.authUseCase.Login(requestCtx, session, req.UsernameOrEmail, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if fieldErrs != nil {
		if err := ctx.Status(http.StatusOK).JSON(dto.UserResponse{Errors: fieldErrs}); err != nil {
			return fmt.Errorf("sending response: %w", err)
		}
		return nil
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.UserResponse{User: user}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Me возвращает пользователя текущей сессии. Для анонимной сессии
// возвращается пустой ответ без ошибки.
func (h *Handler) Me(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerMe)

	session := middleware.SessionFromCtx(ctx)

	user, err := h.authUseCase.Me(requestCtx, session)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{"user": user}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Logout обрабатывает запрос на выход пользователя. Cookie удаляется
// только при успешном уничтожении сессии.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogout)

	session := middleware.SessionFromCtx(ctx)

	success := h.authUseCase.Logout(requestCtx, session)

	if err := ctx.Status(http.StatusOK).JSON(dto.LogoutResponse{Success: success}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ForgotPassword обрабатывает запрос на сброс пароля. Ответ одинаков для
// зарегистрированных и незнакомых адресов.
func (h *Handler) ForgotPassword(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerForgotPassword)

	var req dto.ForgotPasswordRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	success, err := h.authUseCase.ForgotPassword(requestCtx, req.Email)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.ForgotPasswordResponse{Success: success}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ChangePassword обрабатывает смену пароля по токену сброса.
func (h *Handler) ChangePassword(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerChangePassword)

	var req dto.ChangePasswordRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	session := middleware.SessionFromCtx(ctx)

	user, fieldErrs, err := h.authUseCase.ChangePassword(requestCtx, session, req.Token, req.NewPassword)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternalServer)
	}

	if fieldErrs != nil {
		if err := ctx.Status(http.StatusOK).JSON(dto.UserResponse{Errors: fieldErrs}); err != nil {
			return fmt.Errorf("sending response: %w", err)
		}
		return nil
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.UserResponse{User: user}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
