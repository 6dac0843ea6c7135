package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gopostboard/internal/config"
	"gopostboard/internal/domain/entities"
	portservices "gopostboard/internal/ports/services"
	"gopostboard/pkg/logger"
)

// sessionLocalsKey - ключ, под которым сессия хранится в Locals запроса.
const sessionLocalsKey = "session"

// ErrorLoadSession - сообщение журнала при отказе хранилища сессий.
const ErrorLoadSession = "failed to load session"

// NewSessionMiddleware загружает сессию из cookie до обработки запроса и
// записывает cookie после: продлевает её для привязанной сессии, а для
// уничтоженной - просит клиента удалить. Cookie анонимной сессии не пишется.
func NewSessionMiddleware(sessions portservices.SessionManager, cfg *config.SessionConfig) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()

		session, err := sessions.Load(requestCtx, ctx.Cookies(cfg.CookieName))
		if err != nil {
			logger.Log(requestCtx).Error(requestCtx, ErrorLoadSession, zap.Error(err))
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal Server Error",
			})
		}

		ctx.Locals(sessionLocalsKey, session)

		handlerErr := ctx.Next()

		switch {
		case session.Destroyed:
			ctx.Cookie(&fiber.Cookie{
				Name:     cfg.CookieName,
				Value:    "",
				Path:     "/",
				Expires:  time.Unix(0, 0),
				HTTPOnly: true,
				Secure:   cfg.CookieSecure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		case session.Authenticated():
			ctx.Cookie(&fiber.Cookie{
				Name:     cfg.CookieName,
				Value:    session.ID,
				Path:     "/",
				Expires:  time.Now().Add(cfg.GetTTL()),
				HTTPOnly: true,
				Secure:   cfg.CookieSecure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		return handlerErr
	}
}

// SessionFromCtx возвращает сессию текущего запроса.
func SessionFromCtx(ctx fiber.Ctx) *entities.Session {
	session, ok := ctx.Locals(sessionLocalsKey).(*entities.Session)
	if !ok {
		return &entities.Session{}
	}

	return session
}
