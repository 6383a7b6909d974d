package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BrandProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;unique" json:"userId"`

	CompanyName *string `gorm:"size:255" json:"companyName"`
	Website     *string `gorm:"size:255" json:"website"`
	Industry    *string `gorm:"size:100" json:"industry"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *BrandProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
