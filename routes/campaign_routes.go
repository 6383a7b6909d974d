package routes

import (
	"github.com/PrathamGarg1/Xponsor-sub000/handlers"
	"github.com/PrathamGarg1/Xponsor-sub000/middleware"
	"github.com/gofiber/fiber/v2"
)

func CampaignRoutes(app *fiber.App) {
	campaigns := app.Group("/campaigns", middleware.Protected())
	campaigns.Get("", handlers.GetCampaigns)
	campaigns.Get("/:id", handlers.GetCampaign)
	campaigns.Post("", middleware.BrandRequired(), handlers.CreateCampaign)
	campaigns.Patch("/:id", middleware.BrandRequired(), handlers.UpdateCampaign)
	campaigns.Delete("/:id", middleware.BrandRequired(), handlers.DeleteCampaign)
	campaigns.Post("/:id/contact", handlers.ContactCampaignOwner)
	campaigns.Post("/:id/brief", middleware.BrandRequired(), handlers.ExportCampaignBrief)
}
