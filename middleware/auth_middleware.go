package middleware

import (
	config "github.com/PrathamGarg1/Xponsor-sub000/configs"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	message := "Invalid or expired JWT"
	if err.Error() == "Missing or malformed JWT" {
		message = "Missing or malformed JWT"
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": message, "data": nil})
}

func BrandRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Locals("user").(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)
		userType, _ := claims["user_type"].(string)

		if userType != "brand" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Brand account required",
			})
		}
		return c.Next()
	}
}

func InfluencerRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Locals("user").(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)
		userType, _ := claims["user_type"].(string)

		if userType != "influencer" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Influencer account required",
			})
		}
		return c.Next()
	}
}
