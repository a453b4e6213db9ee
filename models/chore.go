package models

import (
	"time"

	"gorm.io/gorm"
)

type Chore struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	FamilyID uint `gorm:"not null" json:"family_id"`

	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"size:1000" json:"description"`
	AssignedTo  *uint  `json:"assigned_to,omitempty"` // nil while unassigned

	// RRule holds an optional RFC 5545 recurrence rule ("FREQ=WEEKLY;BYDAY=SA").
	// Empty for one-off chores.
	RRule string     `gorm:"size:200" json:"rrule"`
	DueAt *time.Time `json:"due_at,omitempty"`

	IsDone    bool `gorm:"default:false" json:"is_done"`
	CreatedBy uint `json:"created_by"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
