package routes

import (
	"github.com/PrathamGarg1/Xponsor-sub000/handlers"
	"github.com/PrathamGarg1/Xponsor-sub000/middleware"
	"github.com/gofiber/fiber/v2"
)

func UploadRoutes(app *fiber.App) {
	uploads := app.Group("/uploads", middleware.Protected())
	uploads.Get("/signature", handlers.GenerateUploadSignature)
}
