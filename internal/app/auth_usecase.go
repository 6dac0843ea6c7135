package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gopostboard/internal/domain/entities"
	"gopostboard/internal/ports/api"
	"gopostboard/internal/ports/repositories"
	portservices "gopostboard/internal/ports/services"
	"gopostboard/pkg/logger"
)

// Названия методов для логирования.
const (
	methodRegister       = "Register"
	methodLogin          = "Login"
	methodMe             = "Me"
	methodLogout         = "Logout"
	methodForgotPassword = "ForgotPassword"
	methodChangePassword = "ChangePassword"
)

// Сообщения журнала.
const (
	msgUserRegistered      = "пользователь зарегистрирован"
	msgUserLoggedIn        = "пользователь вошёл в систему"
	msgSessionDestroyed    = "сессия уничтожена"
	msgResetTokenIssued    = "выдан токен сброса пароля"
	msgPasswordChanged     = "пароль изменён"
	msgUnknownEmail        = "письмо сброса не отправлено: адрес не зарегистрирован"
	msgHashPasswordFailed  = "не удалось хэшировать пароль"
	msgCreateUserFailed    = "не удалось создать пользователя"
	msgFindUserFailed      = "не удалось найти пользователя"
	msgBindSessionFailed   = "не удалось привязать сессию"
	msgDestroySessFailed   = "не удалось уничтожить сессию"
	msgIssueTokenFailed    = "не удалось сохранить токен сброса"
	msgResolveTokenFailed  = "не удалось прочитать токен сброса"
	msgConsumeTokenFailed  = "не удалось удалить использованный токен сброса"
	msgSendEmailFailed     = "не удалось отправить письмо сброса пароля"
	msgUpdatePasswdFailed  = "не удалось сохранить новый пароль"
)

// Контексты ошибок.
const (
	errCtxHashPassword   = "ошибка хэширования пароля"
	errCtxCreateUser     = "ошибка создания пользователя"
	errCtxFindUser       = "ошибка поиска пользователя"
	errCtxBindSession    = "ошибка привязки сессии"
	errCtxIssueToken     = "ошибка сохранения токена сброса"
	errCtxResolveToken   = "ошибка чтения токена сброса"
	errCtxUpdatePassword = "ошибка обновления пароля"
)

// Сообщения об ошибках, видимые пользователю.
const (
	msgUserDoesNotExist  = "Username or email does not exist."
	msgIncorrectPassword = "Incorrect password."
	msgUsernameTaken     = "Username already taken"
	msgTokenExpired      = "Token Expired"
	msgTokenUserMissing  = "User does not exist."
)

// Шаблон письма со ссылкой на страницу смены пароля.
const (
	resetEmailSubject  = "Change password"
	resetEmailBodyTmpl = `<a href="%s/change-password/%s">reset password</a>`
)

// AuthUseCaseImpl реализует операции регистрации, входа и сброса пароля.
type AuthUseCaseImpl struct {
	userRepo       repositories.UserRepository
	tokenRepo      repositories.ResetTokenRepository
	sessions       portservices.SessionManager
	passwords      portservices.PasswordService
	mailer         portservices.EmailService
	resetTokenTTL  time.Duration
	frontendOrigin string
}

// NewAuthUseCase создает новый экземпляр AuthUseCaseImpl.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	tokenRepo repositories.ResetTokenRepository,
	sessions portservices.SessionManager,
	passwords portservices.PasswordService,
	mailer portservices.EmailService,
	resetTokenTTL time.Duration,
	frontendOrigin string,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:       userRepo,
		tokenRepo:      tokenRepo,
		sessions:       sessions,
		passwords:      passwords,
		mailer:         mailer,
		resetTokenTTL:  resetTokenTTL,
		frontendOrigin: frontendOrigin,
	}
}

// Register создает новую учетную запись. Ошибки валидации и занятое имя
// возвращаются как FieldError, а не как error.
func (a *AuthUseCaseImpl) Register(ctx context.Context, username, email, password string) (*entities.User, []entities.FieldError, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister))

	if fieldErrs := validateRegister(username, email, password); fieldErrs != nil {
		return nil, fieldErrs, nil
	}

	hashed, err := a.passwords.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgHashPasswordFailed, zap.Error(err))
		return nil, nil, fmt.Errorf("%s: %w", errCtxHashPassword, err)
	}

	user, err := a.userRepo.Create(ctx, &entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	})
	if err != nil {
		if errors.Is(err, entities.ErrUserAlreadyExists) {
			return nil, entities.NewFieldError(fieldUsername, msgUsernameTaken), nil
		}

		log.Error(ctx, msgCreateUserFailed, zap.Error(err))

		return nil, nil, fmt.Errorf("%s: %w", errCtxCreateUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.Int64("user_id", user.ID))

	return user, nil, nil
}

// Login проверяет учетные данные и привязывает сессию к пользователю.
// Логин, содержащий "@", ищется по email, иначе по имени пользователя.
func (a *AuthUseCaseImpl) Login(ctx context.Context, session *entities.Session, usernameOrEmail, password string) (*entities.User, []entities.FieldError, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin))

	user, err := a.userRepo.FindByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, entities.NewFieldError(fieldUsernameOrEmail, msgUserDoesNotExist), nil
		}

		log.Error(ctx, msgFindUserFailed, zap.Error(err))

		return nil, nil, fmt.Errorf("%s: %w", errCtxFindUser, err)
	}

	if !a.passwords.Verify(ctx, password, user.PasswordHash) {
		return nil, entities.NewFieldError(fieldPassword, msgIncorrectPassword), nil
	}

	if err := a.sessions.Bind(ctx, session, user.ID); err != nil {
		log.Error(ctx, msgBindSessionFailed, zap.Error(err))
		return nil, nil, fmt.Errorf("%s: %w", errCtxBindSession, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.Int64("user_id", user.ID))

	return user, nil, nil
}

// Me возвращает пользователя текущей сессии или nil для анонимной сессии.
func (a *AuthUseCaseImpl) Me(ctx context.Context, session *entities.Session) (*entities.User, error) {
	if !session.Authenticated() {
		return nil, nil
	}

	user, err := a.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			// Сессия указывает на удаленную запись: считаем её анонимной.
			return nil, nil
		}

		logger.Log(ctx).With(zap.String("method", methodMe)).Error(ctx, msgFindUserFailed, zap.Error(err))

		return nil, fmt.Errorf("%s: %w", errCtxFindUser, err)
	}

	return user, nil
}

// Logout уничтожает сессию. false означает, что запись сессии не удалена
// и cookie у клиента должна остаться.
func (a *AuthUseCaseImpl) Logout(ctx context.Context, session *entities.Session) bool {
	log := logger.Log(ctx).With(zap.String("method", methodLogout))

	if err := a.sessions.Destroy(ctx, session); err != nil {
		log.Error(ctx, msgDestroySessFailed, zap.Error(err))
		return false
	}

	log.Info(ctx, msgSessionDestroyed, zap.String("session_id", session.ID))

	return true
}

// ForgotPassword выдает токен сброса и отправляет письмо со ссылкой.
// Для незарегистрированного адреса возвращает true, ничего не сохраняя:
// ответ не раскрывает существование учетной записи.
func (a *AuthUseCaseImpl) ForgotPassword(ctx context.Context, email string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", methodForgotPassword))

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgUnknownEmail)
			return true, nil
		}

		log.Error(ctx, msgFindUserFailed, zap.Error(err))

		return false, fmt.Errorf("%s: %w", errCtxFindUser, err)
	}

	token, err := a.tokenRepo.Issue(ctx, user.ID, a.resetTokenTTL)
	if err != nil {
		log.Error(ctx, msgIssueTokenFailed, zap.Error(err))
		return false, fmt.Errorf("%s: %w", errCtxIssueToken, err)
	}

	log.Info(ctx, msgResetTokenIssued, zap.Int64("user_id", user.ID))

	body := fmt.Sprintf(resetEmailBodyTmpl, a.frontendOrigin, token)
	if err := a.mailer.Send(ctx, user.Email, resetEmailSubject, body); err != nil {
		// Токен уже сохранен, запрос считается успешным.
		log.Error(ctx, msgSendEmailFailed, zap.Error(err))
	}

	return true, nil
}

// ChangePassword меняет пароль по одноразовому токену сброса. Использованный
// токен удаляется, а сессия привязывается к пользователю.
func (a *AuthUseCaseImpl) ChangePassword(ctx context.Context, session *entities.Session, token, newPassword string) (*entities.User, []entities.FieldError, error) {
	log := logger.Log(ctx).With(zap.String("method", methodChangePassword))

	if len(newPassword) <= minPasswordLength {
		return nil, entities.NewFieldError(fieldNewPassword, msgPasswordTooShort), nil
	}

	userID, err := a.tokenRepo.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, entities.ErrResetTokenNotFound) {
			return nil, entities.NewFieldError(fieldToken, msgTokenExpired), nil
		}

		log.Error(ctx, msgResolveTokenFailed, zap.Error(err))

		return nil, nil, fmt.Errorf("%s: %w", errCtxResolveToken, err)
	}

	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, entities.NewFieldError(fieldToken, msgTokenUserMissing), nil
		}

		log.Error(ctx, msgFindUserFailed, zap.Error(err))

		return nil, nil, fmt.Errorf("%s: %w", errCtxFindUser, err)
	}

	hashed, err := a.passwords.Hash(ctx, newPassword)
	if err != nil {
		log.Error(ctx, msgHashPasswordFailed, zap.Error(err))
		return nil, nil, fmt.Errorf("%s: %w", errCtxHashPassword, err)
	}

	updated, err := a.userRepo.UpdatePassword(ctx, user.ID, hashed)
	if err != nil {
		log.Error(ctx, msgUpdatePasswdFailed, zap.Error(err))
		return nil, nil, fmt.Errorf("%s: %w", errCtxUpdatePassword, err)
	}

	if err := a.tokenRepo.Consume(ctx, token); err != nil {
		// Пароль уже изменен; неудаленный токен лишь доживет свой TTL.
		log.Error(ctx, msgConsumeTokenFailed, zap.Error(err))
	}

	if err := a.sessions.Bind(ctx, session, updated.ID); err != nil {
		// Смена пароля завершена, пользователь может войти вручную.
		log.Error(ctx, msgBindSessionFailed, zap.Error(err))
	}

	log.Info(ctx, msgPasswordChanged, zap.Int64("user_id", updated.ID))

	return updated, nil, nil
}
