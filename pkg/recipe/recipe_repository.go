package recipe

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipesFull(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		GetUserRecipes(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error)
		GetRecipesWithLatestVersion(ctx context.Context) ([]*entities.Recipe, error)
		UserHasVersion(ctx context.Context, recipeID, userID uuid.UUID) (bool, error)
		LatestVersionNumber(ctx context.Context, recipeID uuid.UUID) (int, error)
		CreateRecipeWithVersion(ctx context.Context, recipe *entities.Recipe, version *entities.Version, content domain.CreateRecipeRequest) error
		CreateVersion(ctx context.Context, recipe *entities.Recipe, version *entities.Version, content domain.CreateRecipeRequest) error
		CleanupOldVersions(ctx context.Context, recipeID uuid.UUID, keep int) (int, error)
		DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesFull(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Versions", func(db *gorm.DB) *gorm.DB {
			return db.Order("version_number desc")
		}).
		Preload("Versions.Details.Ingredient").
		Preload("Versions.Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_order asc")
		}).
		Preload("Versions.Utensils").
		Preload("Versions.Tips").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Versions", func(db *gorm.DB) *gorm.DB {
			return db.Order("version_number desc")
		}).
		Preload("Versions.Details.Ingredient").
		Preload("Versions.Details.Unit").
		Preload("Versions.Details.IngredientType").
		Preload("Versions.Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_order asc")
		}).
		Preload("Versions.Utensils").
		Preload("Versions.Tips").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetUserRecipes(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Versions", func(db *gorm.DB) *gorm.DB {
			return db.Where("user_id = ?", userID).Order("version_number desc")
		}).
		Preload("Versions.Details.Ingredient").
		Preload("Versions.Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_order asc")
		}).
		Preload("Versions.Utensils").
		Preload("Versions.Tips").
		Where("id IN (?)", r.db.Model(&entities.Version{}).Select("recipe_id").Where("user_id = ?", userID)).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesWithLatestVersion(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Versions", func(db *gorm.DB) *gorm.DB {
			return db.Order("version_number desc")
		}).
		Preload("Versions.User").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UserHasVersion(ctx context.Context, recipeID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Version{}).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) LatestVersionNumber(ctx context.Context, recipeID uuid.UUID) (int, error) {
	var latest int
	if err := r.db.WithContext(ctx).
		Model(&entities.Version{}).
		Where("recipe_id = ?", recipeID).
		Select("COALESCE(MAX(version_number), 0)").
		Scan(&latest).Error; err != nil {
		return 0, err
	}
	return latest, nil
}

func (r *recipeRepository) CreateRecipeWithVersion(ctx context.Context, recipe *entities.Recipe, version *entities.Version, content domain.CreateRecipeRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		if err := tx.Create(version).Error; err != nil {
			return err
		}
		if err := writeVersionChildren(tx, version, content); err != nil {
			return err
		}
		return syncRecipeCategories(tx, recipe.ID, content.Categories)
	})
}

// CreateVersion inserts a new version with its children and updates the
// mutable recipe fields, all in one transaction. A unique-constraint
// violation on (recipe_id, version_number) surfaces as gorm.ErrDuplicatedKey
// and rolls the whole write back; the caller decides whether to retry.
func (r *recipeRepository) CreateVersion(ctx context.Context, recipe *entities.Recipe, version *entities.Version, content domain.CreateRecipeRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(version).Error; err != nil {
			return err
		}
		if err := writeVersionChildren(tx, version, content); err != nil {
			return err
		}
		if err := tx.Model(&entities.Recipe{}).
			Where("id = ?", recipe.ID).
			Updates(map[string]any{
				"name":      recipe.Name,
				"image_url": recipe.ImageURL,
			}).Error; err != nil {
			return err
		}
		if len(content.Categories) > 0 {
			return syncRecipeCategories(tx, recipe.ID, content.Categories)
		}
		return nil
	})
}

// CleanupOldVersions keeps the `keep` highest-numbered versions of a recipe
// and deletes the rest together with all their child rows. Returns how many
// versions were removed.
func (r *recipeRepository) CleanupOldVersions(ctx context.Context, recipeID uuid.UUID, keep int) (int, error) {
	var versions []entities.Version
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("version_number desc").
		Find(&versions).Error; err != nil {
		return 0, err
	}

	if len(versions) <= keep {
		return 0, nil
	}

	staleIDs := make([]uuid.UUID, 0, len(versions)-keep)
	for _, v := range versions[keep:] {
		staleIDs = append(staleIDs, v.ID)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteVersionChildren(tx, staleIDs); err != nil {
			return err
		}
		return tx.Where("id IN ?", staleIDs).Delete(&entities.Version{}).Error
	})
	if err != nil {
		return 0, err
	}
	return len(staleIDs), nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", recipeID).First(&recipe).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var versionIDs []uuid.UUID
		if err := tx.Model(&entities.Version{}).
			Where("recipe_id = ?", recipeID).
			Pluck("id", &versionIDs).Error; err != nil {
			return err
		}
		if len(versionIDs) > 0 {
			if err := deleteVersionChildren(tx, versionIDs); err != nil {
				return err
			}
			if err := tx.Where("id IN ?", versionIDs).Delete(&entities.Version{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Exec("DELETE FROM belongs_to_recipe_category WHERE recipe_id = ?", recipeID).Error; err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}

// writeVersionChildren creates the detail/step/utensil/tip rows for a freshly
// inserted version. Ingredients and utensils are find-or-create by exact name;
// the unique name index turns a concurrent double-create into a constraint
// violation that aborts the transaction.
func writeVersionChildren(tx *gorm.DB, version *entities.Version, content domain.CreateRecipeRequest) error {
	for _, entry := range content.Ingredients {
		var ingredient entities.Ingredient
		if err := tx.Where(entities.Ingredient{Name: entry.Name}).
			Attrs(entities.Ingredient{ID: uuid.New()}).
			FirstOrCreate(&ingredient).Error; err != nil {
			return err
		}

		detail := entities.RecipeDetail{
			ID:               uuid.New(),
			VersionID:        version.ID,
			IngredientID:     ingredient.ID,
			UnitID:           entry.UnitID,
			IngredientTypeID: entry.IngredientTypeID,
			Quantity:         entry.Quantity,
		}
		if err := tx.Create(&detail).Error; err != nil {
			return err
		}
	}

	// Submitted order wins, whatever order values the client sent
	for i, entry := range content.Steps {
		step := entities.Step{
			ID:          uuid.New(),
			VersionID:   version.ID,
			StepOrder:   i + 1,
			Description: entry.Description,
			Temperature: entry.Temperature,
			Speed:       entry.Speed,
		}
		if err := tx.Create(&step).Error; err != nil {
			return err
		}
	}

	for _, name := range content.Utensils {
		var utensil entities.Utensil
		if err := tx.Where(entities.Utensil{Name: name}).
			Attrs(entities.Utensil{ID: uuid.New()}).
			FirstOrCreate(&utensil).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"INSERT INTO uses_utensil (version_id, utensil_id) VALUES (?, ?)",
			version.ID, utensil.ID,
		).Error; err != nil {
			return err
		}
	}

	for _, text := range content.Tips {
		tip := entities.Tip{
			ID:        uuid.New(),
			VersionID: version.ID,
			TipText:   text,
		}
		if err := tx.Create(&tip).Error; err != nil {
			return err
		}
	}

	return nil
}

func syncRecipeCategories(tx *gorm.DB, recipeID uuid.UUID, categoryIDs []uuid.UUID) error {
	if err := tx.Exec("DELETE FROM belongs_to_recipe_category WHERE recipe_id = ?", recipeID).Error; err != nil {
		return err
	}
	for _, categoryID := range categoryIDs {
		if err := tx.Exec(
			"INSERT INTO belongs_to_recipe_category (recipe_id, recipe_category_id) VALUES (?, ?)",
			recipeID, categoryID,
		).Error; err != nil {
			return err
		}
	}
	return nil
}

func deleteVersionChildren(tx *gorm.DB, versionIDs []uuid.UUID) error {
	if err := tx.Where("version_id IN ?", versionIDs).Delete(&entities.RecipeDetail{}).Error; err != nil {
		return err
	}
	if err := tx.Where("version_id IN ?", versionIDs).Delete(&entities.Step{}).Error; err != nil {
		return err
	}
	if err := tx.Where("version_id IN ?", versionIDs).Delete(&entities.Tip{}).Error; err != nil {
		return err
	}
	if err := tx.Where("version_id IN ?", versionIDs).Delete(&entities.Comment{}).Error; err != nil {
		return err
	}
	return tx.Exec("DELETE FROM uses_utensil WHERE version_id IN ?", versionIDs).Error
}
