package models

import "time"

type FamilyInvitation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FamilyID  uint      `json:"family_id"`                    // family the invitee is asked to join
	Email     string    `gorm:"not null" json:"email"`        // invitee's email
	Token     string    `gorm:"unique;not null" json:"token"` // unique invitation token
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
