package handlers

import (
	"github.com/PrathamGarg1/Xponsor-sub000/database"
	"github.com/PrathamGarg1/Xponsor-sub000/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OnboardingRequest struct {
	UserType string `json:"userType" validate:"required,oneof=brand influencer"`
}

// CompleteOnboarding records the user's side of the marketplace. The choice
// is made once: repeating the same choice is a no-op, switching sides is
// rejected. An empty profile row for the chosen side is created alongside.
func CompleteOnboarding(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req OnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if user.UserType != nil {
		if *user.UserType == req.UserType {
			t, _ := issueToken(user)
			return c.JSON(fiber.Map{"user": user, "token": t})
		}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Account type has already been chosen"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		user.UserType = &req.UserType
		if err := tx.Save(user).Error; err != nil {
			return err
		}

		switch req.UserType {
		case models.UserTypeInfluencer:
			return tx.Create(&models.InfluencerProfile{UserID: user.ID}).Error
		case models.UserTypeBrand:
			return tx.Create(&models.BrandProfile{UserID: user.ID}).Error
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to complete onboarding"})
	}

	t, err := issueToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(fiber.Map{"user": user, "token": t})
}
