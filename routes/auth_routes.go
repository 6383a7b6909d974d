package routes

import (
	"github.com/PrathamGarg1/Xponsor-sub000/handlers"
	"github.com/PrathamGarg1/Xponsor-sub000/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)
	auth.Get("/me", middleware.Protected(), handlers.GetMe)

	app.Post("/onboarding", middleware.Protected(), handlers.CompleteOnboarding)
}
