package routes

import (
	"github.com/PrathamGarg1/Xponsor-sub000/handlers"
	"github.com/PrathamGarg1/Xponsor-sub000/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func MessagingRoutes(app *fiber.App) {
	messages := app.Group("/messages", middleware.Protected())
	messages.Get("", handlers.GetConversations)
	messages.Post("", handlers.SendMessage)
	messages.Get("/:counterpartId", handlers.GetThread)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	app.Get("/ws", websocket.New(handlers.ServeWs))
}
