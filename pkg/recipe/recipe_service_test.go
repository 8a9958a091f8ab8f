package recipe

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/entities"
	"context"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	repo   RecipeRepository
	svc    RecipeService
	user   *entities.User
	admin  *entities.User
	unit   *entities.Unit
	ingTyp *entities.IngredientType
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Unit{},
		&entities.IngredientCategory{},
		&entities.IngredientType{},
		&entities.Ingredient{},
		&entities.Utensil{},
		&entities.RecipeCategory{},
		&entities.Recipe{},
		&entities.Version{},
		&entities.RecipeDetail{},
		&entities.Step{},
		&entities.Tip{},
		&entities.Comment{},
	))

	user := &entities.User{ID: uuid.New(), Username: "cook", Email: "cook@example.com", Role: domain.RoleUser}
	admin := &entities.User{ID: uuid.New(), Username: "boss", Email: "boss@example.com", Role: domain.RoleAdmin}
	unit := &entities.Unit{ID: uuid.New(), Name: "gram"}
	ingTyp := &entities.IngredientType{ID: uuid.New(), Name: "main"}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(admin).Error)
	require.NoError(t, db.Create(unit).Error)
	require.NoError(t, db.Create(ingTyp).Error)

	repo := NewRecipeRepository(db)
	return &testEnv{
		db:     db,
		repo:   repo,
		svc:    NewRecipeService(repo, nil),
		user:   user,
		admin:  admin,
		unit:   unit,
		ingTyp: ingTyp,
	}
}

func (e *testEnv) sampleRequest(name string) domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Name: name,
		VersionData: domain.VersionData{
			Description: "rich and hearty",
			PrepTime:    10,
			CookTime:    30,
			TotalTime:   40,
			Servings:    4,
		},
		Ingredients: []domain.IngredientEntry{
			{Name: "onion", Quantity: 2, UnitID: e.unit.ID, IngredientTypeID: e.ingTyp.ID},
			{Name: "butter", Quantity: 50, UnitID: e.unit.ID, IngredientTypeID: e.ingTyp.ID},
		},
		Steps: []domain.StepEntry{
			{Description: "chop the onion"},
			{Description: "melt the butter"},
			{Description: "combine and simmer"},
		},
		Utensils: []string{"saucepan"},
	}
}

func (e *testEnv) versionNumbers(t *testing.T, recipeID uuid.UUID) []int {
	t.Helper()
	var numbers []int
	require.NoError(t, e.db.Model(&entities.Version{}).
		Where("recipe_id = ?", recipeID).
		Order("version_number asc").
		Pluck("version_number", &numbers).Error)
	return numbers
}

func (e *testEnv) countFor(t *testing.T, model any, query string, args ...any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(model).Where(query, args...).Count(&count).Error)
	return count
}

func TestCreateRecipe_FirstVersionWithChildren(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateRecipe(ctx, env.sampleRequest("french onion soup"), nil, env.user.ID.String())
	require.NoError(t, err)
	require.Len(t, created.Versions, 1)

	version := created.Versions[0]
	assert.Equal(t, 1, version.VersionNumber)
	assert.Equal(t, env.user.ID, version.UserID)

	assert.EqualValues(t, 2, env.countFor(t, &entities.RecipeDetail{}, "version_id = ?", version.ID))
	assert.EqualValues(t, 0, env.countFor(t, &entities.Tip{}, "version_id = ?", version.ID))

	var steps []entities.Step
	require.NoError(t, env.db.Where("version_id = ?", version.ID).Order("step_order asc").Find(&steps).Error)
	require.Len(t, steps, 3)
	for i, step := range steps {
		assert.Equal(t, i+1, step.StepOrder)
	}

	var utensilLinks int64
	require.NoError(t, env.db.Raw("SELECT COUNT(*) FROM uses_utensil WHERE version_id = ?", version.ID).Scan(&utensilLinks).Error)
	assert.EqualValues(t, 1, utensilLinks)
}

func TestCreateRecipe_IngredientsDeduplicatedByName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.CreateRecipe(ctx, env.sampleRequest("soup one"), nil, env.user.ID.String())
	require.NoError(t, err)
	_, err = env.svc.CreateRecipe(ctx, env.sampleRequest("soup two"), nil, env.user.ID.String())
	require.NoError(t, err)

	assert.EqualValues(t, 1, env.countFor(t, &entities.Ingredient{}, "name = ?", "onion"))
	assert.EqualValues(t, 1, env.countFor(t, &entities.Utensil{}, "name = ?", "saucepan"))
}

func TestUpdateRecipe_NumbersAreDense(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateRecipe(ctx, env.sampleRequest("goulash"), nil, env.user.ID.String())
	require.NoError(t, err)

	version, err := env.svc.UpdateRecipe(ctx, created.ID.String(), env.sampleRequest("goulash v2"), nil, env.user.ID.String(), env.user.Role)
	require.NoError(t, err)
	assert.Equal(t, 2, version.VersionNumber)

	version, err = env.svc.UpdateRecipe(ctx, created.ID.String(), env.sampleRequest("goulash v3"), nil, env.user.ID.String(), env.user.Role)
	require.NoError(t, err)
	assert.Equal(t, 3, version.VersionNumber)

	assert.Equal(t, []int{1, 2, 3}, env.versionNumbers(t, created.ID))
}

func TestUpdateRecipe_RetainsNewestThreeVersions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateRecipe(ctx, env.sampleRequest("stew"), nil, env.user.ID.String())
	require.NoError(t, err)

	for i := 2; i <= 6; i++ {
		_, err := env.svc.UpdateRecipe(ctx, created.ID.String(), env.sampleRequest(fmt.Sprintf("stew v%d", i)), nil, env.user.ID.String(), env.user.Role)
		require.NoError(t, err)
	}

	assert.Equal(t, []int{4, 5, 6}, env.versionNumbers(t, created.ID))

	// No child rows may outlive their version.
	var surviving []uuid.UUID
	require.NoError(t, env.db.Model(&entities.Version{}).Pluck("id", &surviving).Error)
	assert.EqualValues(t, 0, env.countFor(t, &entities.RecipeDetail{}, "version_id NOT IN ?", surviving))
	assert.EqualValues(t, 0, env.countFor(t, &entities.Step{}, "version_id NOT IN ?", surviving))
	var orphanLinks int64
	require.NoError(t, env.db.Raw("SELECT COUNT(*) FROM uses_utensil WHERE version_id NOT IN (SELECT id FROM versions)").Scan(&orphanLinks).Error)
	assert.EqualValues(t, 0, orphanLinks)
}

func TestUpdateRecipe_MutatesRecipeNameInPlace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateRecipe(ctx, env.sampleRequest("plain stew"), nil, env.user.ID.String())
	require.NoError(t, err)

	_, err = env.svc.UpdateRecipe(ctx, created.ID.String(), env.sampleRequest("fancy stew"), nil, env.user.ID.String(), env.user.Role)
	require.NoError(t, err)

	var recipe entities.Recipe
	require.NoError(t, env.db.First(&recipe, "id = ?", created.ID).Error)
	assert.Equal(t, "fancy stew", recipe.Name)
}

func TestUpdateRecipe_StrangerIsRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateRecipe(ctx, env.sampleRequest("secret sauce"), nil, env.user.ID.String())
	require.NoError(t, err)

	stranger := &entities.User{ID: uuid.New(), Username: "drifter", Email: "drifter@example.com", Role: domain.RoleUser}
	require.NoError(t, env.db.Create(stranger).Error)

	_, err = env.svc.UpdateRecipe(ctx, created.ID.String(), env.sampleRequest("stolen sauce"), nil, stranger.ID.String(), stranger.Role)
	require.ErrorIs(t, err, domain.ErrUserNotAllowed)

	// Rejection happens before any write.
	assert.Equal(t, []int{1}, env.versionNumbers(t, created.ID))
	var recipe entities.Recipe
	require.NoError(t, env.db.First(&recipe, "id = ?", created.ID).Error)
	assert.Equal(t, "secret sauce", recipe.Name)
}

func TestUpdateRecipe_AdminMayEditAnything(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateRecipe(ctx, env.sampleRequest("house special"), nil, env.user.ID.String())
	require.NoError(t, err)

	version, err := env.svc.UpdateRecipe(ctx, created.ID.String(), env.sampleRequest("house special fixed"), nil, env.admin.ID.String(), env.admin.Role)
	require.NoError(t, err)
	assert.Equal(t, 2, version.VersionNumber)
	assert.Equal(t, env.admin.ID, version.UserID)
}

func TestUpdateRecipe_UnknownRecipe(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.UpdateRecipe(context.Background(), uuid.NewString(), env.sampleRequest("ghost"), nil, env.user.ID.String(), env.user.Role)
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

// flakyRepository fails CreateVersion with a duplicate-key error a fixed
// number of times before delegating, mimicking a concurrent edit stealing
// the version number.
type flakyRepository struct {
	RecipeRepository
	failures int
}

func (f *flakyRepository) CreateVersion(ctx context.Context, recipe *entities.Recipe, version *entities.Version, content domain.CreateRecipeRequest) error {
	if f.failures > 0 {
		f.failures--
		return gorm.ErrDuplicatedKey
	}
	return f.RecipeRepository.CreateVersion(ctx, recipe, version, content)
}

func TestUpdateRecipe_RetriesOnceOnNumberCollision(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateRecipe(ctx, env.sampleRequest("contested dish"), nil, env.user.ID.String())
	require.NoError(t, err)

	flaky := &flakyRepository{RecipeRepository: env.repo, failures: 1}
	svc := NewRecipeService(flaky, nil)

	version, err := svc.UpdateRecipe(ctx, created.ID.String(), env.sampleRequest("contested dish v2"), nil, env.user.ID.String(), env.user.Role)
	require.NoError(t, err)
	assert.Equal(t, 2, version.VersionNumber)
	assert.Equal(t, 0, flaky.failures)
}

func TestUpdateRecipe_GivesUpAfterSecondCollision(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateRecipe(ctx, env.sampleRequest("hot dish"), nil, env.user.ID.String())
	require.NoError(t, err)

	flaky := &flakyRepository{RecipeRepository: env.repo, failures: 2}
	svc := NewRecipeService(flaky, nil)

	_, err = svc.UpdateRecipe(ctx, created.ID.String(), env.sampleRequest("hot dish v2"), nil, env.user.ID.String(), env.user.Role)
	require.ErrorIs(t, err, domain.ErrVersionConflict)
	assert.Equal(t, []int{1}, env.versionNumbers(t, created.ID))
}

func TestDeleteRecipe_CascadesEverything(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateRecipe(ctx, env.sampleRequest("short lived"), nil, env.user.ID.String())
	require.NoError(t, err)
	_, err = env.svc.UpdateRecipe(ctx, created.ID.String(), env.sampleRequest("short lived v2"), nil, env.user.ID.String(), env.user.Role)
	require.NoError(t, err)

	require.NoError(t, env.svc.DeleteRecipe(ctx, created.ID.String()))

	assert.EqualValues(t, 0, env.countFor(t, &entities.Recipe{}, "id = ?", created.ID))
	assert.EqualValues(t, 0, env.countFor(t, &entities.Version{}, "recipe_id = ?", created.ID))
	assert.EqualValues(t, 0, env.countFor(t, &entities.RecipeDetail{}, "1 = 1"))
	assert.EqualValues(t, 0, env.countFor(t, &entities.Step{}, "1 = 1"))
	var links int64
	require.NoError(t, env.db.Raw("SELECT COUNT(*) FROM uses_utensil").Scan(&links).Error)
	assert.EqualValues(t, 0, links)

	// Reference entities survive the cascade.
	assert.EqualValues(t, 2, env.countFor(t, &entities.Ingredient{}, "1 = 1"))
	assert.EqualValues(t, 1, env.countFor(t, &entities.Utensil{}, "1 = 1"))
}

func TestDeleteRecipe_UnknownRecipe(t *testing.T) {
	env := newTestEnv(t)

	err := env.svc.DeleteRecipe(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestCreateRecipeRequest_StepsAreRequired(t *testing.T) {
	env := newTestEnv(t)

	req := env.sampleRequest("no steps")
	req.Steps = nil

	err := validator.New().Struct(req)
	require.Error(t, err)
}
