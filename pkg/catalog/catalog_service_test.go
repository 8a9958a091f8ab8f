package catalog

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (CatalogService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entities.Unit{},
		&entities.Utensil{},
		&entities.RecipeCategory{},
		&entities.IngredientCategory{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.Version{},
	))

	return NewCatalogService(NewCatalogRepository(db)), db
}

func TestUnits_SortedByName(t *testing.T) {
	svc, db := newTestService(t)

	for _, name := range []string{"teaspoon", "gram", "liter"} {
		require.NoError(t, db.Create(&entities.Unit{ID: uuid.New(), Name: name}).Error)
	}

	units, err := svc.GetUnits(context.Background())
	require.NoError(t, err)
	require.Len(t, units, 3)
	assert.Equal(t, "gram", units[0].Name)
	assert.Equal(t, "liter", units[1].Name)
	assert.Equal(t, "teaspoon", units[2].Name)
}

func TestUtensilLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateUtensil(ctx, domain.NameRequest{Name: "whisk"})
	require.NoError(t, err)

	updated, err := svc.UpdateUtensil(ctx, created.ID.String(), domain.NameRequest{Name: "balloon whisk"})
	require.NoError(t, err)
	assert.Equal(t, "balloon whisk", updated.Name)

	require.NoError(t, svc.DeleteUtensil(ctx, created.ID.String()))

	_, err = svc.GetUtensil(ctx, created.ID.String())
	require.ErrorIs(t, err, domain.ErrUtensilNotFound)
}

func TestUtensil_BadID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetUtensil(context.Background(), "not-a-uuid")
	require.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestRecipeCategoryLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRecipeCategory(ctx, domain.NameRequest{Name: "dessert"})
	require.NoError(t, err)

	fetched, err := svc.GetRecipeCategory(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "dessert", fetched.Name)

	require.NoError(t, svc.DeleteRecipeCategory(ctx, created.ID.String()))

	_, err = svc.GetRecipeCategory(ctx, created.ID.String())
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestIngredientCategoryLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateIngredientCategory(ctx, domain.NameRequest{Name: "dairy"})
	require.NoError(t, err)

	updated, err := svc.UpdateIngredientCategory(ctx, created.ID.String(), domain.NameRequest{Name: "dairy & eggs"})
	require.NoError(t, err)
	assert.Equal(t, "dairy & eggs", updated.Name)

	require.NoError(t, svc.DeleteIngredientCategory(ctx, created.ID.String()))

	_, err = svc.GetIngredientCategory(ctx, created.ID.String())
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
