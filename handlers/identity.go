package handlers

import (
	"github.com/PrathamGarg1/Xponsor-sub000/database"
	"github.com/PrathamGarg1/Xponsor-sub000/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// currentUserID pulls the authenticated user id out of the verified JWT.
func currentUserID(c *fiber.Ctx) uuid.UUID {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	return userID
}

// currentUser resolves the session identity to a stored User exactly once per
// request; every handler that needs the viewer threads this record through
// instead of re-deriving it.
func currentUser(c *fiber.Ctx) (*models.User, error) {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
