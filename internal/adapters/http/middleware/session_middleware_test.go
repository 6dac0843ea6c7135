package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v3"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopostboard/internal/adapters/http/middleware"
	redisadapter "gopostboard/internal/adapters/redis"
	"gopostboard/internal/config"
	portservices "gopostboard/internal/ports/services"
)

func newSessionApp(t *testing.T) (*fiber.App, portservices.SessionManager) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)

	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})

	t.Cleanup(func() {
		_ = client.Close()
		s.Close()
	})

	manager := redisadapter.NewSessionManager(client, 24*time.Hour)

	cfg := &config.SessionConfig{CookieName: "qid", TTLYears: 10}

	app := fiber.New()
	app.Use(middleware.NewSessionMiddleware(manager, cfg))
	app.Post("/login", func(c fiber.Ctx) error {
		session := middleware.SessionFromCtx(c)
		if err := manager.Bind(c.Context(), session, 7); err != nil {
			return c.SendStatus(http.StatusInternalServerError)
		}
		return c.SendStatus(http.StatusOK)
	})
	app.Post("/logout", func(c fiber.Ctx) error {
		session := middleware.SessionFromCtx(c)
		if err := manager.Destroy(c.Context(), session); err != nil {
			return c.SendStatus(http.StatusInternalServerError)
		}
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/whoami", func(c fiber.Ctx) error {
		session := middleware.SessionFromCtx(c)
		if !session.Authenticated() {
			return c.SendString("anonymous")
		}
		return c.SendString("authenticated")
	})

	return app, manager
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "qid" {
			return cookie
		}
	}
	return nil
}

func TestSessionMiddlewareSetsCookieAfterBind(t *testing.T) {
	app, _ := newSessionApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookie(t, resp)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.True(t, cookie.Expires.After(time.Now()))
}

func TestSessionMiddlewareNoCookieForAnonymous(t *testing.T) {
	app, _ := newSessionApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)

	assert.Nil(t, sessionCookie(t, resp))
}

func TestSessionMiddlewareCookieRoundTrip(t *testing.T) {
	app, _ := newSessionApp(t)

	loginResp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
	require.NoError(t, err)
	cookie := sessionCookie(t, loginResp)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "qid", Value: cookie.Value})

	resp, err := app.Test(req)
	require.NoError(t, err)

	body := make([]byte, 32)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "authenticated", string(body[:n]))
}

func TestSessionMiddlewareClearsCookieAfterDestroy(t *testing.T) {
	app, _ := newSessionApp(t)

	loginResp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
	require.NoError(t, err)
	cookie := sessionCookie(t, loginResp)
	require.NotNil(t, cookie)

	logoutReq := httptest.NewRequest(http.MethodPost, "/logout", nil)
	logoutReq.AddCookie(&http.Cookie{Name: "qid", Value: cookie.Value})

	logoutResp, err := app.Test(logoutReq)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, logoutResp.StatusCode)

	cleared := sessionCookie(t, logoutResp)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.Expires.Before(time.Now()))

	// Воспроизведение старой cookie дает анонимную сессию.
	replayReq := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	replayReq.AddCookie(&http.Cookie{Name: "qid", Value: cookie.Value})

	replayResp, err := app.Test(replayReq)
	require.NoError(t, err)

	body := make([]byte, 32)
	n, _ := replayResp.Body.Read(body)
	assert.Equal(t, "anonymous", string(body[:n]))
}
