package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	UserTypeBrand      = "brand"
	UserTypeInfluencer = "influencer"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	// Nil until onboarding picks a side; set exactly once after that.
	UserType *string `gorm:"size:20" json:"userType"`
	ImageURL *string `gorm:"size:255" json:"image"`

	InfluencerProfile *InfluencerProfile `json:"influencerProfile,omitempty"`
	BrandProfile      *BrandProfile      `json:"brandProfile,omitempty"`
	Campaigns         []*Campaign        `gorm:"foreignkey:BrandID" json:"-"`

	SentMessages     []*Message `gorm:"foreignkey:SenderID" json:"-"`
	ReceivedMessages []*Message `gorm:"foreignkey:ReceiverID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
