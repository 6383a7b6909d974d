package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/PrathamGarg1/Xponsor-sub000/database"
	"github.com/PrathamGarg1/Xponsor-sub000/models"
	"github.com/PrathamGarg1/Xponsor-sub000/services"
	"github.com/PrathamGarg1/Xponsor-sub000/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type CreateCampaignRequest struct {
	Title        string   `json:"title" validate:"required,min=3"`
	Description  string   `json:"description"`
	Category     string   `json:"category" validate:"required"`
	Platform     string   `json:"platform" validate:"required"`
	Budget       float64  `json:"budget" validate:"required,gt=0"`
	Deliverables []string `json:"deliverables,omitempty"`
	Deadline     *string  `json:"deadline,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func CreateCampaign(c *fiber.Ctx) error {
	brand, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slug, err := utils.GenerateUniqueCampaignSlug(database.DB, req.Title)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate campaign slug"})
	}

	campaign := models.Campaign{
		BrandID:     brand.ID,
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		Category:    req.Category,
		Platform:    req.Platform,
		Budget:      req.Budget,
		Status:      models.CampaignStatusOpen,
	}
	if req.Deadline != nil {
		deadline, _ := time.Parse(time.RFC3339, *req.Deadline)
		campaign.Deadline = &deadline
	}
	if len(req.Deliverables) > 0 {
		raw, err := json.Marshal(req.Deliverables)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid deliverables"})
		}
		campaign.Deliverables = datatypes.JSON(raw)
	}

	if err := database.DB.Create(&campaign).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create campaign"})
	}

	return c.Status(fiber.StatusCreated).JSON(campaign)
}

// GetCampaigns lists open campaigns with optional category/platform/budget
// filters and page/page_size pagination.
func GetCampaigns(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	query := database.DB.Model(&models.Campaign{}).Preload("Brand")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if platform := c.Query("platform"); platform != "" {
		query = query.Where("platform = ?", platform)
	}
	if minBudget := c.Query("min_budget"); minBudget != "" {
		if v, err := strconv.ParseFloat(minBudget, 64); err == nil {
			query = query.Where("budget >= ?", v)
		}
	}
	if maxBudget := c.Query("max_budget"); maxBudget != "" {
		if v, err := strconv.ParseFloat(maxBudget, 64); err == nil {
			query = query.Where("budget <= ?", v)
		}
	}
	status := c.Query("status", models.CampaignStatusOpen)
	if status != "all" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var campaigns []models.Campaign
	if err := query.
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&campaigns).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch campaigns"})
	}

	return c.JSON(fiber.Map{
		"campaigns": campaigns,
		"total":     total,
		"page":      page,
		"pageSize":  pageSize,
	})
}

func GetCampaign(c *fiber.Ctx) error {
	campaignID := c.Params("id")

	var campaign models.Campaign
	if err := database.DB.Preload("Brand").First(&campaign, "id = ?", campaignID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Campaign not found"})
	}

	return c.JSON(campaign)
}

type UpdateCampaignRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Category     *string  `json:"category"`
	Platform     *string  `json:"platform"`
	Budget       *float64 `json:"budget"`
	Deliverables []string `json:"deliverables,omitempty"`
	Deadline     *string  `json:"deadline,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Status       *string  `json:"status" validate:"omitempty,oneof=open closed"`
}

func UpdateCampaign(c *fiber.Ctx) error {
	brand, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var campaign models.Campaign
	if err := database.DB.First(&campaign, "id = ? AND brand_id = ?", c.Params("id"), brand.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Campaign not found"})
	}

	var req UpdateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Title != nil {
		campaign.Title = *req.Title
	}
	if req.Description != nil {
		campaign.Description = *req.Description
	}
	if req.Category != nil {
		campaign.Category = *req.Category
	}
	if req.Platform != nil {
		campaign.Platform = *req.Platform
	}
	if req.Budget != nil {
		campaign.Budget = *req.Budget
	}
	if req.Deliverables != nil {
		raw, err := json.Marshal(req.Deliverables)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid deliverables"})
		}
		campaign.Deliverables = datatypes.JSON(raw)
	}
	if req.Deadline != nil {
		deadline, _ := time.Parse(time.RFC3339, *req.Deadline)
		campaign.Deadline = &deadline
	}
	if req.Status != nil {
		campaign.Status = *req.Status
	}

	if err := database.DB.Save(&campaign).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update campaign"})
	}

	return c.JSON(campaign)
}

func DeleteCampaign(c *fiber.Ctx) error {
	brand, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var campaign models.Campaign
	if err := database.DB.First(&campaign, "id = ? AND brand_id = ?", c.Params("id"), brand.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Campaign not found"})
	}

	if err := database.DB.Delete(&campaign).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete campaign"})
	}

	return c.JSON(fiber.Map{"message": "Campaign deleted"})
}

// ContactCampaignOwner opens a conversation with the campaign's brand by
// sending a pre-filled greeting through the regular send path.
func ContactCampaignOwner(c *fiber.Ctx) error {
	viewer, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var campaign models.Campaign
	if err := database.DB.First(&campaign, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Campaign not found"})
	}

	if campaign.BrandID == viewer.ID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You cannot message your own campaign"})
	}

	greeting := fmt.Sprintf("Hi! I'm interested in your campaign \"%s\". I'd love to discuss a collaboration.", campaign.Title)

	msg, err := createMessage(viewer, campaign.BrandID, greeting)
	if err != nil {
		if errors.Is(err, errReceiverNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Receiver not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send message"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": msg})
}

// ExportCampaignBrief renders the campaign as a PDF and returns its URL.
func ExportCampaignBrief(c *fiber.Ctx) error {
	brand, err := currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var campaign models.Campaign
	if err := database.DB.Preload("Brand").First(&campaign, "id = ? AND brand_id = ?", c.Params("id"), brand.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Campaign not found"})
	}

	briefURL, err := services.GenerateCampaignBrief(&campaign)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate campaign brief"})
	}

	return c.JSON(fiber.Map{"briefUrl": briefURL})
}
