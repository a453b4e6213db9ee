package models

import "time"

type PantryItem struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	FamilyID uint `gorm:"not null" json:"family_id"`

	Name      string     `gorm:"size:200;not null" json:"name"`
	Quantity  float64    `json:"quantity"`
	Unit      string     `gorm:"size:50" json:"unit"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GroceryItem struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	FamilyID uint `gorm:"not null" json:"family_id"`

	Name      string  `gorm:"size:200;not null" json:"name"`
	Quantity  string  `gorm:"size:50" json:"quantity"` // free-form ("2", "500 g")
	Purchased bool    `gorm:"default:false" json:"purchased"`
	AddedBy   uint    `json:"added_by"`
	RecipeID  *uint   `json:"recipe_id,omitempty"` // set when added from a recipe

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
