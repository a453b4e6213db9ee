package models

import "time"

type Document struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	FamilyID uint `gorm:"not null" json:"family_id"`

	Title      string `gorm:"size:200" json:"title"`
	FileName   string `gorm:"size:255;not null" json:"file_name"` // original upload name
	StoredPath string `gorm:"size:255;not null" json:"-"`         // path on disk
	Size       int64  `json:"size"`
	UploadedBy uint   `json:"uploaded_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
