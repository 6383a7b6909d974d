package handlers

import (
	"github.com/PrathamGarg1/Xponsor-sub000/database"
	"github.com/PrathamGarg1/Xponsor-sub000/models"
	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	FullName *string `json:"name"`
	ImageURL *string `json:"image"`
}

func GetProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.
		Preload("InfluencerProfile").
		Preload("BrandProfile").
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user)
}

func UpdateProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.ImageURL != nil {
		user.ImageURL = req.ImageURL
	}

	database.DB.Save(user)

	return c.JSON(user)
}

type UpdateInfluencerProfileRequest struct {
	Bio             *string  `json:"bio"`
	InstagramHandle *string  `json:"instagramHandle"`
	FollowerCount   *int     `json:"followerCount"`
	Categories      *string  `json:"categories"`
	RatePerPost     *float64 `json:"ratePerPost"`
}

func UpdateInfluencerProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var profile models.InfluencerProfile
	if err := database.DB.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Influencer profile not found"})
	}

	var req UpdateInfluencerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.InstagramHandle != nil {
		profile.InstagramHandle = req.InstagramHandle
	}
	if req.FollowerCount != nil {
		profile.FollowerCount = *req.FollowerCount
	}
	if req.Categories != nil {
		profile.Categories = req.Categories
	}
	if req.RatePerPost != nil {
		profile.RatePerPost = *req.RatePerPost
	}

	database.DB.Save(&profile)

	return c.JSON(profile)
}

type UpdateBrandProfileRequest struct {
	CompanyName *string `json:"companyName"`
	Website     *string `json:"website"`
	Industry    *string `json:"industry"`
}

func UpdateBrandProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var profile models.BrandProfile
	if err := database.DB.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Brand profile not found"})
	}

	var req UpdateBrandProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.CompanyName != nil {
		profile.CompanyName = req.CompanyName
	}
	if req.Website != nil {
		profile.Website = req.Website
	}
	if req.Industry != nil {
		profile.Industry = req.Industry
	}

	database.DB.Save(&profile)

	return c.JSON(profile)
}
