package models

import "time"

type Devotion struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	FamilyID uint `gorm:"not null" json:"family_id"`

	Title   string `gorm:"size:200;not null" json:"title"`
	Passage string `gorm:"size:200" json:"passage"` // scripture reference ("John 3:16")
	Body    string `gorm:"type:text" json:"body"`

	// Date is the day this devotion is scheduled for, at midnight UTC.
	Date      time.Time `gorm:"index" json:"date"`
	CreatedBy uint      `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
