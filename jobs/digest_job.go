package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/PrathamGarg1/Xponsor-sub000/database"
	"github.com/PrathamGarg1/Xponsor-sub000/models"
	"github.com/PrathamGarg1/Xponsor-sub000/notifications"
)

// SendUnreadDigests emails every user who has messages that arrived more
// than an hour ago and are still unread. Runs hourly; the window keeps a
// message from being nagged about twice.
func SendUnreadDigests() {
	log.Println("Running job: SendUnreadDigests...")

	now := time.Now()
	upperBound := now.Add(-1 * time.Hour)
	lowerBound := now.Add(-2 * time.Hour)

	type digestRow struct {
		ReceiverID string
		Count      int64
	}
	var rows []digestRow

	err := database.DB.Model(&models.Message{}).
		Select("receiver_id, count(*) as count").
		Where("is_read = ? AND created_at BETWEEN ? AND ?", false, lowerBound, upperBound).
		Group("receiver_id").
		Scan(&rows).Error
	if err != nil {
		log.Printf("Error checking for unread messages: %v", err)
		return
	}

	if len(rows) == 0 {
		return
	}

	for _, row := range rows {
		var user models.User
		if err := database.DB.First(&user, "id = ?", row.ReceiverID).Error; err != nil {
			continue
		}

		emailSubject := "You have unread messages on Xponsor"
		emailBody := fmt.Sprintf(
			"<h1>Unread Messages</h1><p>Hi %s,</p><p>You have %d unread message(s) waiting in your inbox.</p>",
			user.FullName, row.Count,
		)

		go notifications.SendEmail(user.FullName, user.Email, emailSubject, emailBody)
	}

	log.Printf("Queued unread digests for %d user(s).", len(rows))
}
