package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	CampaignStatusOpen   = "open"
	CampaignStatusClosed = "closed"
)

type Campaign struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BrandID uuid.UUID `gorm:"type:uuid;not null;index" json:"brandId"`

	Title       string  `gorm:"size:255;not null" json:"title"`
	Slug        string  `gorm:"size:255;not null;unique" json:"slug"`
	Description string  `gorm:"type:text" json:"description"`
	Category    string  `gorm:"size:100;not null" json:"category"`
	Platform    string  `gorm:"size:50;not null" json:"platform"`
	Budget      float64 `gorm:"type:numeric(10,2);not null" json:"budget"`

	Deliverables datatypes.JSON `json:"deliverables,omitempty"`

	Deadline *time.Time `json:"deadline,omitempty"`
	Status   string     `gorm:"size:20;not null;default:'open'" json:"status"`

	Brand User `gorm:"foreignkey:BrandID" json:"brand,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (cp *Campaign) BeforeCreate(tx *gorm.DB) error {
	if cp.ID == uuid.Nil {
		cp.ID = uuid.New()
	}
	return nil
}
