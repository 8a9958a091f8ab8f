package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	MessageSuccessGetRecipes       = "success get recipes"
	MessageSuccessGetRecipeDetail  = "success get recipe detail"
	MessageSuccessCreateRecipe     = "recipe created successfully"
	MessageSuccessUpdateRecipe     = "new recipe version created successfully"
	MessageSuccessDeleteRecipe     = "recipe deleted successfully"
	MessageSuccessGetUserRecipes   = "success get user recipes"
	MessageSuccessGetAdminRecipes  = "success get admin recipes"
	MessageFailedGetRecipes        = "failed to get recipes"
	MessageFailedGetRecipeDetail   = "failed to get recipe detail"
	MessageFailedCreateRecipe      = "failed to create recipe"
	MessageFailedUpdateRecipe      = "failed to update recipe"
	MessageFailedDeleteRecipe      = "failed to delete recipe"
	MessageFailedRecipeDataMissing = "recipe data missing"

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrVersionConflict = errors.New("version numbering conflict, please retry")
)

type (
	// CreateRecipeRequest is the payload shared by recipe creation and the
	// edit workflow; an edit snapshots it into a brand new version.
	CreateRecipeRequest struct {
		Name        string            `json:"name" validate:"required"`
		VersionData VersionData       `json:"versionData" validate:"required"`
		Ingredients []IngredientEntry `json:"ingredients" validate:"required,dive"`
		Steps       []StepEntry       `json:"steps" validate:"required,dive"`
		Utensils    []string          `json:"utensils"`
		Categories  []uuid.UUID       `json:"categories"`
		Tips        []string          `json:"tips"`
	}

	VersionData struct {
		Description string `json:"description"`
		PrepTime    int    `json:"prepTime"`
		CookTime    int    `json:"cookTime"`
		TotalTime   int    `json:"totalTime"`
		Servings    int    `json:"servings"`
	}

	IngredientEntry struct {
		Name             string    `json:"name" validate:"required"`
		Quantity         float64   `json:"quantity" validate:"required,gt=0"`
		UnitID           uuid.UUID `json:"unit_id" validate:"required"`
		IngredientTypeID uuid.UUID `json:"ingredient_type_id" validate:"required"`
	}

	StepEntry struct {
		Description string `json:"description" validate:"required"`
		Temperature *int   `json:"temperature,omitempty"`
		Speed       *int   `json:"speed,omitempty"`
	}

	// AdminRecipeSummary lists a recipe with its newest version and author.
	AdminRecipeSummary struct {
		ID            string     `json:"id"`
		Name          string     `json:"name"`
		VersionNumber *int       `json:"version_number"`
		CreatedAt     *time.Time `json:"created_at"`
		Author        *Author    `json:"author"`
	}

	Author struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	}
)
