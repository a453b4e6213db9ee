package models

import "time"

type BudgetEntry struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	FamilyID uint `gorm:"not null" json:"family_id"`

	Kind     string `gorm:"size:10;not null" json:"kind"` // "income" or "expense"
	Category string `gorm:"size:100" json:"category"`
	// Amount is stored in minor currency units (cents).
	Amount int64  `gorm:"not null" json:"amount"`
	Note   string `gorm:"size:500" json:"note"`

	OccurredAt time.Time `gorm:"index" json:"occurred_at"`
	CreatedBy  uint      `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
