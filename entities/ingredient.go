package entities

import (
	"github.com/google/uuid"
)

// Ingredient is a deduplicated reference entity, looked up by exact name and
// created on first use. The unique index backs the find-or-create path.
type Ingredient struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`

	Categories []*IngredientCategory `gorm:"many2many:belongs_to_ingredient_category" json:"categories,omitempty"`
}

type IngredientCategory struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `json:"name"`
}

type IngredientType struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `json:"name"`
}

type Unit struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `json:"name"`
}
