package domain

import (
	"errors"
)

var (
	MessageSuccessRegister   = "user registered successfully"
	MessageSuccessLogin      = "login successful"
	MessageSuccessGetProfile = "success get profile"
	MessageSuccessGetUsers   = "success get users"
	MessageSuccessUpdateUser = "user updated successfully"
	MessageSuccessDeleteUser = "user deleted successfully"

	MessageFailedRegister   = "failed to register user"
	MessageFailedLogin      = "failed to login"
	MessageFailedGetProfile = "failed to get profile"
	MessageFailedGetUsers   = "failed to get users"
	MessageFailedUpdateUser = "failed to update user"
	MessageFailedDeleteUser = "failed to delete user"

	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=2,max=30"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8,max=32"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		Token    string `json:"token"`
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}

	UpdateUserRequest struct {
		Username string `json:"username,omitempty" validate:"omitempty,min=2,max=30"`
		Email    string `json:"email,omitempty" validate:"omitempty,email"`
	}

	UserResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}
)
