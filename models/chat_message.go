package models

import "time"

type ChatMessage struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	FamilyID uint `gorm:"index;not null" json:"family_id"`
	SenderID uint `json:"sender_id"`

	Content  string  `gorm:"size:2000" json:"content"`
	ImageURL *string `gorm:"size:255" json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
