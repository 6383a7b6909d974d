package jobs

import (
	"log"
	"time"

	"github.com/PrathamGarg1/Xponsor-sub000/database"
	"github.com/PrathamGarg1/Xponsor-sub000/models"
)

// CloseExpiredCampaigns flips past-deadline open campaigns to closed so they
// drop out of the default listing.
func CloseExpiredCampaigns() {
	log.Println("Running job: CloseExpiredCampaigns...")

	var expiredCampaigns []models.Campaign

	err := database.DB.
		Where("status = ? AND deadline IS NOT NULL AND deadline < ?", models.CampaignStatusOpen, time.Now()).
		Find(&expiredCampaigns).Error
	if err != nil {
		log.Printf("Error checking for expired campaigns: %v", err)
		return
	}

	if len(expiredCampaigns) == 0 {
		return
	}

	for _, campaign := range expiredCampaigns {
		campaign.Status = models.CampaignStatusClosed
		database.DB.Save(&campaign)
	}

	log.Printf("Closed %d expired campaign(s).", len(expiredCampaigns))
}
