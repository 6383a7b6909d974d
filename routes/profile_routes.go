package routes

import (
	"github.com/PrathamGarg1/Xponsor-sub000/handlers"
	"github.com/PrathamGarg1/Xponsor-sub000/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App) {
	profile := app.Group("/profile", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Patch("", handlers.UpdateProfile)
	profile.Put("/influencer", middleware.InfluencerRequired(), handlers.UpdateInfluencerProfile)
	profile.Put("/brand", middleware.BrandRequired(), handlers.UpdateBrandProfile)
}
