package catalog

import (
	"Cookbook-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		GetUnits(ctx context.Context) ([]*entities.Unit, error)

		GetUtensils(ctx context.Context) ([]*entities.Utensil, error)
		GetUtensilByID(ctx context.Context, id uuid.UUID) (*entities.Utensil, error)
		CreateUtensil(ctx context.Context, utensil *entities.Utensil) error
		UpdateUtensil(ctx context.Context, utensil *entities.Utensil) error
		DeleteUtensil(ctx context.Context, id uuid.UUID) error

		GetRecipeCategories(ctx context.Context) ([]*entities.RecipeCategory, error)
		GetRecipeCategoryByID(ctx context.Context, id uuid.UUID) (*entities.RecipeCategory, error)
		CreateRecipeCategory(ctx context.Context, category *entities.RecipeCategory) error
		UpdateRecipeCategory(ctx context.Context, category *entities.RecipeCategory) error
		DeleteRecipeCategory(ctx context.Context, id uuid.UUID) error

		GetIngredientCategories(ctx context.Context) ([]*entities.IngredientCategory, error)
		GetIngredientCategoryByID(ctx context.Context, id uuid.UUID) (*entities.IngredientCategory, error)
		CreateIngredientCategory(ctx context.Context, category *entities.IngredientCategory) error
		UpdateIngredientCategory(ctx context.Context, category *entities.IngredientCategory) error
		DeleteIngredientCategory(ctx context.Context, id uuid.UUID) error
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetUnits(ctx context.Context) ([]*entities.Unit, error) {
	var units []*entities.Unit
	if err := r.db.WithContext(ctx).Order("name asc").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (r *catalogRepository) GetUtensils(ctx context.Context) ([]*entities.Utensil, error) {
	var utensils []*entities.Utensil
	if err := r.db.WithContext(ctx).Order("name asc").Find(&utensils).Error; err != nil {
		return nil, err
	}
	return utensils, nil
}

func (r *catalogRepository) GetUtensilByID(ctx context.Context, id uuid.UUID) (*entities.Utensil, error) {
	var utensil entities.Utensil
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&utensil).Error; err != nil {
		return nil, err
	}
	return &utensil, nil
}

func (r *catalogRepository) CreateUtensil(ctx context.Context, utensil *entities.Utensil) error {
	return r.db.WithContext(ctx).Create(utensil).Error
}

func (r *catalogRepository) UpdateUtensil(ctx context.Context, utensil *entities.Utensil) error {
	return r.db.WithContext(ctx).Save(utensil).Error
}

func (r *catalogRepository) DeleteUtensil(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM uses_utensil WHERE utensil_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Utensil{}, "id = ?", id).Error
	})
}

func (r *catalogRepository) GetRecipeCategories(ctx context.Context) ([]*entities.RecipeCategory, error) {
	var categories []*entities.RecipeCategory
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *catalogRepository) GetRecipeCategoryByID(ctx context.Context, id uuid.UUID) (*entities.RecipeCategory, error) {
	var category entities.RecipeCategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *catalogRepository) CreateRecipeCategory(ctx context.Context, category *entities.RecipeCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *catalogRepository) UpdateRecipeCategory(ctx context.Context, category *entities.RecipeCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *catalogRepository) DeleteRecipeCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM belongs_to_recipe_category WHERE recipe_category_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.RecipeCategory{}, "id = ?", id).Error
	})
}

func (r *catalogRepository) GetIngredientCategories(ctx context.Context) ([]*entities.IngredientCategory, error) {
	var categories []*entities.IngredientCategory
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *catalogRepository) GetIngredientCategoryByID(ctx context.Context, id uuid.UUID) (*entities.IngredientCategory, error) {
	var category entities.IngredientCategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *catalogRepository) CreateIngredientCategory(ctx context.Context, category *entities.IngredientCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *catalogRepository) UpdateIngredientCategory(ctx context.Context, category *entities.IngredientCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *catalogRepository) DeleteIngredientCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM belongs_to_ingredient_category WHERE ingredient_category_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.IngredientCategory{}, "id = ?", id).Error
	})
}
