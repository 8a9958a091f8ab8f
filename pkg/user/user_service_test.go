package user

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/entities"
	"Cookbook-Backend/pkg/jwt"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (UserService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entities.User{}))

	return NewUserService(NewUserRepository(db), jwt.NewJWTService()), db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, domain.RegisterRequest{
		Username: "newcook",
		Email:    "newcook@example.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, domain.RoleUser, registered.Role)

	loggedIn, err := svc.Login(ctx, domain.LoginRequest{
		Email:    "newcook@example.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, loggedIn.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := domain.RegisterRequest{
		Username: "original",
		Email:    "taken@example.com",
		Password: "supersecret1",
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	req.Username = "copycat"
	_, err = svc.Register(ctx, req)
	require.ErrorIs(t, err, domain.ErrEmailAlreadyUsed)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{
		Username: "careful",
		Email:    "careful@example.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.LoginRequest{
		Email:    "careful@example.com",
		Password: "wrongpassword",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUpdateUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, domain.RegisterRequest{
		Username: "before",
		Email:    "before@example.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateUser(ctx, registered.ID, domain.UpdateUserRequest{Username: "after"})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Username)
	assert.Equal(t, "before@example.com", updated.Email)
}

func TestDeleteUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, domain.RegisterRequest{
		Username: "leaving",
		Email:    "leaving@example.com",
		Password: "supersecret1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, registered.ID))

	_, err = svc.GetUser(ctx, registered.ID)
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	err = svc.DeleteUser(ctx, registered.ID)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
