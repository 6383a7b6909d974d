package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Message struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"senderId"`
	ReceiverID uuid.UUID `gorm:"type:uuid;not null;index" json:"receiverId"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsRead     bool      `gorm:"not null;default:false" json:"isRead"`

	Sender   *User `gorm:"foreignkey:SenderID" json:"sender,omitempty"`
	Receiver *User `gorm:"foreignkey:ReceiverID" json:"-"`

	// Sole ordering key for threads and inboxes; never updated after insert.
	CreatedAt time.Time `json:"createdAt"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
