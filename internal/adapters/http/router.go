// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"gopostboard/internal/adapters/http/auth"
	"gopostboard/internal/adapters/http/middleware"
	"gopostboard/internal/adapters/http/posts"
	"gopostboard/internal/config"
	"gopostboard/internal/ports/api"
	portservices "gopostboard/internal/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	authUseCase api.AuthUseCase,
	postUseCase api.PostUseCase,
	sessions portservices.SessionManager,
	httpCfg *config.HTTPConfig,
	sessionCfg *config.SessionConfig,
) {
	authHandler := auth.NewHandler(authUseCase)
	postHandler := posts.NewHandler(postUseCase)

	// Middleware для всех запросов. CORS с credentials нужен для
	// передачи session cookie фронтенду с другого origin.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     []string{httpCfg.FrontendOrigin},
		AllowCredentials: true,
	}))
	app.Use(middleware.NewSessionMiddleware(sessions, sessionCfg))

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Auth routes.
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/me", authHandler.Me)
	authRoutes.Post("/forgot-password", authHandler.ForgotPassword)
	authRoutes.Post("/change-password", authHandler.ChangePassword)

	// Маршруты постов.
	postRoutes := apiV1.Group("/posts")
	postRoutes.Post("/", postHandler.CreatePost)
	postRoutes.Get("/", postHandler.ListPosts)
	postRoutes.Get("/:post_id", postHandler.GetPost)
	postRoutes.Patch("/:post_id", postHandler.UpdatePost)
	postRoutes.Put("/:post_id", postHandler.UpdatePost)
	postRoutes.Delete("/:post_id", postHandler.DeletePost)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
