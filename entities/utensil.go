package entities

import (
	"github.com/google/uuid"
)

type Utensil struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`

	Versions []*Version `gorm:"many2many:uses_utensil" json:"-"`
}

type RecipeCategory struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `json:"name"`

	Recipes []*Recipe `gorm:"many2many:belongs_to_recipe_category" json:"-"`
}
