package utils

import (
	"math/rand"
	"strings"
	"time"

	"github.com/PrathamGarg1/Xponsor-sub000/models"
	"gorm.io/gorm"
)

const slugSuffixLength = 6
const letterBytes = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateUniqueCampaignSlug derives a URL slug from the campaign title and
// appends a random suffix until no existing campaign claims it.
func GenerateUniqueCampaignSlug(tx *gorm.DB, title string) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	base := slugify(title)

	for {
		b := make([]byte, slugSuffixLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		slug := base + "-" + string(b)

		var campaign models.Campaign
		err := tx.Where("slug = ?", slug).First(&campaign).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return slug, nil
			}
			return "", err
		}
	}
}

func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "campaign"
	}
	return slug
}
