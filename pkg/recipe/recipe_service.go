package recipe

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/entities"
	"Cookbook-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VersionRetention is how many versions survive per recipe; older ones are
// purged after every successful edit.
const VersionRetention = 3

type (
	RecipeService interface {
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetAllRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipeDetail(ctx context.Context, recipeID string) (*entities.Recipe, error)
		GetUserRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		GetAdminRecipes(ctx context.Context) ([]domain.AdminRecipeSummary, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, image *multipart.FileHeader, userID string) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.CreateRecipeRequest, image *multipart.FileHeader, userID string, role string) (*entities.Version, error)
		DeleteRecipe(ctx context.Context, recipeID string) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

// canEdit is the ownership rule for the edit workflow: the user must have
// authored at least one version of the recipe, or hold the admin role.
func canEdit(ownsVersion bool, role string) bool {
	return ownsVersion || role == domain.RoleAdmin
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	return s.recipeRepository.GetRecipes(ctx)
}

func (s *recipeService) GetAllRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	return s.recipeRepository.GetRecipesFull(ctx)
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string) (*entities.Recipe, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) GetUserRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.recipeRepository.GetUserRecipes(ctx, userUUID)
}

func (s *recipeService) GetAdminRecipes(ctx context.Context) ([]domain.AdminRecipeSummary, error) {
	recipes, err := s.recipeRepository.GetRecipesWithLatestVersion(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.AdminRecipeSummary, 0, len(recipes))
	for _, recipe := range recipes {
		summary := domain.AdminRecipeSummary{
			ID:   recipe.ID.String(),
			Name: recipe.Name,
		}
		if len(recipe.Versions) > 0 {
			latest := recipe.Versions[0]
			number := latest.VersionNumber
			createdAt := latest.CreatedAt
			summary.VersionNumber = &number
			summary.CreatedAt = &createdAt
			if latest.User != nil {
				summary.Author = &domain.Author{
					ID:       latest.User.ID.String(),
					Username: latest.User.Username,
				}
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, image *multipart.FileHeader, userID string) (*entities.Recipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipeID := uuid.New()

	// The image is stored before the transaction opens; an upload failure
	// means "no image", not a failed create.
	imageURL := s.storeImage(recipeID, image)

	recipe := &entities.Recipe{
		ID:       recipeID,
		Name:     req.Name,
		ImageURL: imageURL,
	}
	version := newVersion(recipeID, userUUID, req, 1)

	if err := s.recipeRepository.CreateRecipeWithVersion(ctx, recipe, version, req); err != nil {
		if imageURL != "" {
			log.Warnf("recipe create rolled back, stored image %s is orphaned", imageURL)
		}
		return nil, err
	}

	recipe.Versions = []entities.Version{*version}
	return recipe, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.CreateRecipeRequest, image *multipart.FileHeader, userID string, role string) (*entities.Version, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	ownsVersion, err := s.recipeRepository.UserHasVersion(ctx, recipeUUID, userUUID)
	if err != nil {
		return nil, err
	}
	if !canEdit(ownsVersion, role) {
		return nil, domain.ErrUserNotAllowed
	}

	// A failed upload preserves the previous image reference
	if image != nil {
		if imageURL := s.storeImage(recipeUUID, image); imageURL != "" {
			recipe.ImageURL = imageURL
		}
	}
	recipe.Name = req.Name

	// Optimistic numbering: read max, insert max+1; a duplicate-key error
	// means a concurrent edit won the number, so recompute and retry once.
	var version *entities.Version
	for attempt := 0; ; attempt++ {
		latest, err := s.recipeRepository.LatestVersionNumber(ctx, recipeUUID)
		if err != nil {
			return nil, err
		}

		version = newVersion(recipeUUID, userUUID, req, latest+1)
		err = s.recipeRepository.CreateVersion(ctx, recipe, version, req)
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if attempt == 0 {
				continue
			}
			return nil, domain.ErrVersionConflict
		}
		return nil, err
	}

	// Best-effort retention: the new version is already committed, so a
	// cleanup failure is logged instead of failing the edit.
	if _, err := s.recipeRepository.CleanupOldVersions(ctx, recipeUUID, VersionRetention); err != nil {
		log.Errorf("version cleanup failed for recipe %s: %v", recipeID, err)
	}

	return version, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string) error {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipeUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}

func (s *recipeService) storeImage(recipeID uuid.UUID, image *multipart.FileHeader) string {
	if image == nil {
		return ""
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("recipe-%s", recipeID.String()),
		image,
		"recipes",
		storage.AllowImage...,
	)
	if err != nil {
		log.Errorf("recipe image upload failed: %v", err)
		return ""
	}
	return s.s3.GetPublicLinkKey(objectKey)
}

func newVersion(recipeID, userID uuid.UUID, req domain.CreateRecipeRequest, number int) *entities.Version {
	return &entities.Version{
		ID:            uuid.New(),
		RecipeID:      recipeID,
		UserID:        userID,
		Name:          req.Name,
		Description:   req.VersionData.Description,
		PrepTime:      req.VersionData.PrepTime,
		CookTime:      req.VersionData.CookTime,
		TotalTime:     req.VersionData.TotalTime,
		Servings:      req.VersionData.Servings,
		VersionNumber: number,
		CreatedAt:     time.Now(),
	}
}
