package catalog

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CatalogService interface {
		GetUnits(ctx context.Context) ([]*entities.Unit, error)

		GetUtensils(ctx context.Context) ([]*entities.Utensil, error)
		GetUtensil(ctx context.Context, id string) (*entities.Utensil, error)
		CreateUtensil(ctx context.Context, req domain.NameRequest) (*entities.Utensil, error)
		UpdateUtensil(ctx context.Context, id string, req domain.NameRequest) (*entities.Utensil, error)
		DeleteUtensil(ctx context.Context, id string) error

		GetRecipeCategories(ctx context.Context) ([]*entities.RecipeCategory, error)
		GetRecipeCategory(ctx context.Context, id string) (*entities.RecipeCategory, error)
		CreateRecipeCategory(ctx context.Context, req domain.NameRequest) (*entities.RecipeCategory, error)
		UpdateRecipeCategory(ctx context.Context, id string, req domain.NameRequest) (*entities.RecipeCategory, error)
		DeleteRecipeCategory(ctx context.Context, id string) error

		GetIngredientCategories(ctx context.Context) ([]*entities.IngredientCategory, error)
		GetIngredientCategory(ctx context.Context, id string) (*entities.IngredientCategory, error)
		CreateIngredientCategory(ctx context.Context, req domain.NameRequest) (*entities.IngredientCategory, error)
		UpdateIngredientCategory(ctx context.Context, id string, req domain.NameRequest) (*entities.IngredientCategory, error)
		DeleteIngredientCategory(ctx context.Context, id string) error
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{catalogRepository: catalogRepository}
}

func (s *catalogService) GetUnits(ctx context.Context) ([]*entities.Unit, error) {
	return s.catalogRepository.GetUnits(ctx)
}

func (s *catalogService) GetUtensils(ctx context.Context) ([]*entities.Utensil, error) {
	return s.catalogRepository.GetUtensils(ctx)
}

func (s *catalogService) GetUtensil(ctx context.Context, id string) (*entities.Utensil, error) {
	utensilUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	utensil, err := s.catalogRepository.GetUtensilByID(ctx, utensilUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUtensilNotFound
		}
		return nil, err
	}
	return utensil, nil
}

func (s *catalogService) CreateUtensil(ctx context.Context, req domain.NameRequest) (*entities.Utensil, error) {
	utensil := &entities.Utensil{
		ID:   uuid.New(),
		Name: req.Name,
	}
	if err := s.catalogRepository.CreateUtensil(ctx, utensil); err != nil {
		return nil, err
	}
	return utensil, nil
}

func (s *catalogService) UpdateUtensil(ctx context.Context, id string, req domain.NameRequest) (*entities.Utensil, error) {
	utensil, err := s.GetUtensil(ctx, id)
	if err != nil {
		return nil, err
	}

	utensil.Name = req.Name
	if err := s.catalogRepository.UpdateUtensil(ctx, utensil); err != nil {
		return nil, err
	}
	return utensil, nil
}

func (s *catalogService) DeleteUtensil(ctx context.Context, id string) error {
	utensil, err := s.GetUtensil(ctx, id)
	if err != nil {
		return err
	}
	return s.catalogRepository.DeleteUtensil(ctx, utensil.ID)
}

func (s *catalogService) GetRecipeCategories(ctx context.Context) ([]*entities.RecipeCategory, error) {
	return s.catalogRepository.GetRecipeCategories(ctx)
}

func (s *catalogService) GetRecipeCategory(ctx context.Context, id string) (*entities.RecipeCategory, error) {
	categoryUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	category, err := s.catalogRepository.GetRecipeCategoryByID(ctx, categoryUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) CreateRecipeCategory(ctx context.Context, req domain.NameRequest) (*entities.RecipeCategory, error) {
	category := &entities.RecipeCategory{
		ID:   uuid.New(),
		Name: req.Name,
	}
	if err := s.catalogRepository.CreateRecipeCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) UpdateRecipeCategory(ctx context.Context, id string, req domain.NameRequest) (*entities.RecipeCategory, error) {
	category, err := s.GetRecipeCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	if err := s.catalogRepository.UpdateRecipeCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) DeleteRecipeCategory(ctx context.Context, id string) error {
	category, err := s.GetRecipeCategory(ctx, id)
	if err != nil {
		return err
	}
	return s.catalogRepository.DeleteRecipeCategory(ctx, category.ID)
}

func (s *catalogService) GetIngredientCategories(ctx context.Context) ([]*entities.IngredientCategory, error) {
	return s.catalogRepository.GetIngredientCategories(ctx)
}

func (s *catalogService) GetIngredientCategory(ctx context.Context, id string) (*entities.IngredientCategory, error) {
	categoryUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	category, err := s.catalogRepository.GetIngredientCategoryByID(ctx, categoryUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) CreateIngredientCategory(ctx context.Context, req domain.NameRequest) (*entities.IngredientCategory, error) {
	category := &entities.IngredientCategory{
		ID:   uuid.New(),
		Name: req.Name,
	}
	if err := s.catalogRepository.CreateIngredientCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) UpdateIngredientCategory(ctx context.Context, id string, req domain.NameRequest) (*entities.IngredientCategory, error) {
	category, err := s.GetIngredientCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	if err := s.catalogRepository.UpdateIngredientCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) DeleteIngredientCategory(ctx context.Context, id string) error {
	category, err := s.GetIngredientCategory(ctx, id)
	if err != nil {
		return err
	}
	return s.catalogRepository.DeleteIngredientCategory(ctx, category.ID)
}
