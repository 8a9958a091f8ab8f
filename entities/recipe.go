package entities

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is the stable identity row. Name and image are mutable in place;
// everything else lives on immutable Version snapshots.
type Recipe struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `json:"name"`
	ImageURL string    `json:"image_url,omitempty"`

	Categories []*RecipeCategory `gorm:"many2many:belongs_to_recipe_category" json:"categories,omitempty"`
	Versions   []Version         `gorm:"foreignKey:RecipeID" json:"versions,omitempty"`
	Timestamp
}

// Version is an immutable snapshot of a recipe's content. VersionNumber is
// monotonic per recipe, enforced by the composite unique index.
type Version struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_recipe_version_number" json:"recipe_id"`
	UserID        uuid.UUID `gorm:"type:uuid" json:"user_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PrepTime      int       `json:"prep_time"`
	CookTime      int       `json:"cook_time"`
	TotalTime     int       `json:"total_time"`
	Servings      int       `json:"servings"`
	VersionNumber int       `gorm:"uniqueIndex:idx_recipe_version_number" json:"version_number"`
	CreatedAt     time.Time `gorm:"type:timestamp" json:"created_at"`

	Recipe   *Recipe        `gorm:"foreignKey:RecipeID" json:"-"`
	User     *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Details  []RecipeDetail `gorm:"foreignKey:VersionID" json:"details,omitempty"`
	Steps    []Step         `gorm:"foreignKey:VersionID" json:"steps,omitempty"`
	Tips     []Tip          `gorm:"foreignKey:VersionID" json:"tips,omitempty"`
	Utensils []*Utensil     `gorm:"many2many:uses_utensil" json:"utensils,omitempty"`
}

// RecipeDetail binds one ingredient with its quantity to a version.
type RecipeDetail struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	VersionID        uuid.UUID `gorm:"type:uuid" json:"version_id"`
	IngredientID     uuid.UUID `gorm:"type:uuid" json:"ingredient_id"`
	UnitID           uuid.UUID `gorm:"type:uuid" json:"unit_id"`
	IngredientTypeID uuid.UUID `gorm:"type:uuid" json:"ingredient_type_id"`
	Quantity         float64   `json:"quantity"`

	Version        *Version        `gorm:"foreignKey:VersionID" json:"-"`
	Ingredient     *Ingredient     `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	Unit           *Unit           `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	IngredientType *IngredientType `gorm:"foreignKey:IngredientTypeID" json:"ingredient_type,omitempty"`
}

// Step ordering is assigned from array position at write time, 1..N.
type Step struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	VersionID   uuid.UUID `gorm:"type:uuid" json:"version_id"`
	StepOrder   int       `json:"step_order"`
	Description string    `json:"description"`
	Temperature *int      `json:"temperature,omitempty"`
	Speed       *int      `json:"speed,omitempty"`

	Version *Version `gorm:"foreignKey:VersionID" json:"-"`
}

type Tip struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	VersionID uuid.UUID `gorm:"type:uuid" json:"version_id"`
	TipText   string    `json:"tip_text"`

	Version *Version `gorm:"foreignKey:VersionID" json:"-"`
}
