package comment

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db      *gorm.DB
	svc     CommentService
	user    *entities.User
	admin   *entities.User
	version *entities.Version
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
		&entities.Recipe{},
		&entities.Version{},
		&entities.Comment{},
	))

	user := &entities.User{ID: uuid.New(), Username: "taster", Email: "taster@example.com", Role: domain.RoleUser}
	admin := &entities.User{ID: uuid.New(), Username: "mod", Email: "mod@example.com", Role: domain.RoleAdmin}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(admin).Error)

	recipe := &entities.Recipe{ID: uuid.New(), Name: "tested dish"}
	require.NoError(t, db.Create(recipe).Error)
	version := &entities.Version{
		ID:            uuid.New(),
		RecipeID:      recipe.ID,
		UserID:        user.ID,
		Name:          recipe.Name,
		VersionNumber: 1,
		CreatedAt:     time.Now(),
	}
	require.NoError(t, db.Create(version).Error)

	return &testEnv{
		db:      db,
		svc:     NewCommentService(NewCommentRepository(db)),
		user:    user,
		admin:   admin,
		version: version,
	}
}

func TestCreateComment(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.svc.CreateComment(context.Background(), domain.CreateCommentRequest{
		CommentText: "needs more salt",
		Rating:      4,
		VersionID:   env.version.ID,
	}, env.user.ID.String())
	require.NoError(t, err)

	assert.Equal(t, "needs more salt", created.CommentText)
	assert.Equal(t, 4, created.Rating)
	require.NotNil(t, created.User)
	assert.Equal(t, env.user.Username, created.User.Username)
}

func TestCreateComment_UnknownVersion(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.CreateComment(context.Background(), domain.CreateCommentRequest{
		CommentText: "shouting into the void",
		Rating:      1,
		VersionID:   uuid.New(),
	}, env.user.ID.String())
	require.ErrorIs(t, err, domain.ErrVersionNotFound)
}

func TestUpdateComment_OnlyAuthorOrAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateComment(ctx, domain.CreateCommentRequest{
		CommentText: "first impression",
		Rating:      3,
		VersionID:   env.version.ID,
	}, env.user.ID.String())
	require.NoError(t, err)

	stranger := &entities.User{ID: uuid.New(), Username: "lurker", Email: "lurker@example.com", Role: domain.RoleUser}
	require.NoError(t, env.db.Create(stranger).Error)

	_, err = env.svc.UpdateComment(ctx, created.ID.String(), domain.UpdateCommentRequest{
		CommentText: "hijacked",
		Rating:      0,
	}, stranger.ID.String(), stranger.Role)
	require.ErrorIs(t, err, domain.ErrUserNotAllowed)

	updated, err := env.svc.UpdateComment(ctx, created.ID.String(), domain.UpdateCommentRequest{
		CommentText: "second impression",
		Rating:      5,
	}, env.admin.ID.String(), env.admin.Role)
	require.NoError(t, err)
	assert.Equal(t, "second impression", updated.CommentText)
	assert.Equal(t, 5, updated.Rating)
}

func TestDeleteComment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateComment(ctx, domain.CreateCommentRequest{
		CommentText: "temporary thought",
		Rating:      2,
		VersionID:   env.version.ID,
	}, env.user.ID.String())
	require.NoError(t, err)

	require.NoError(t, env.svc.DeleteComment(ctx, created.ID.String(), env.user.ID.String(), env.user.Role))

	err = env.svc.DeleteComment(ctx, created.ID.String(), env.user.ID.String(), env.user.Role)
	require.ErrorIs(t, err, domain.ErrCommentNotFound)
}

func TestGetVersionComments_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, text := range []string{"older", "newer"} {
		comment := &entities.Comment{
			ID:          uuid.New(),
			VersionID:   env.version.ID,
			UserID:      env.user.ID,
			CommentText: text,
			Rating:      3,
			CreatedAt:   time.Now(),
		}
		require.NoError(t, env.db.Create(comment).Error)
		time.Sleep(5 * time.Millisecond)
	}

	comments, err := env.svc.GetVersionComments(ctx, env.version.ID.String())
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "newer", comments[0].CommentText)
	assert.Equal(t, "older", comments[1].CommentText)
}
