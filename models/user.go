package models

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"size:20;default:member" json:"role"` // "member", "owner" or "admin"

	FamilyID uint `json:"family_id"` // 0 while the user has not joined a family

	IsActivated    bool   `gorm:"default:false" json:"is_activated"`
	ActivationLink string `json:"-"`
	RefreshToken   string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
