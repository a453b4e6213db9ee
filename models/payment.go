package models

import "time"

type Payment struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	FamilyID uint `json:"family_id"`
	UserID   uint `json:"user_id"`

	// ProviderID is the checkout session id assigned by the payments provider.
	ProviderID string `gorm:"unique;not null" json:"provider_id"`
	Plan       string `gorm:"size:20" json:"plan"` // "monthly" or "yearly"
	Amount     int64  `json:"amount"`              // minor currency units
	Currency   string `gorm:"size:3" json:"currency"`
	Status     string `gorm:"size:20;default:pending" json:"status"` // "pending", "succeeded", "canceled"

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Subscription struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	FamilyID uint `gorm:"uniqueIndex;not null" json:"family_id"`

	Plan      string    `gorm:"size:20" json:"plan"`
	Status    string    `gorm:"size:20;default:inactive" json:"status"` // "inactive", "active", "expired"
	ExpiresAt time.Time `json:"expires_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
