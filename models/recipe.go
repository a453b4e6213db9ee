package models

import "time"

type Recipe struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	FamilyID uint `gorm:"not null" json:"family_id"`

	Title        string `gorm:"size:200;not null" json:"title"`
	Instructions string `gorm:"type:text" json:"instructions"`
	CreatedBy    uint   `json:"created_by"`

	Ingredients []RecipeIngredient `json:"ingredients"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RecipeIngredient struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RecipeID uint   `gorm:"not null" json:"recipe_id"`
	Name     string `gorm:"size:200;not null" json:"name"`
	Quantity string `gorm:"size:50" json:"quantity"`
}
