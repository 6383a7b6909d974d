package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InfluencerProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;unique" json:"userId"`

	Bio             *string `gorm:"type:text" json:"bio"`
	InstagramHandle *string `gorm:"size:100" json:"instagramHandle"`
	FollowerCount   int     `gorm:"default:0" json:"followerCount"`
	Categories      *string `gorm:"size:255" json:"categories"`
	RatePerPost     float64 `gorm:"type:numeric(10,2);default:0.00" json:"ratePerPost"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *InfluencerProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
