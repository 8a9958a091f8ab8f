package user

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/entities"
	"Cookbook-Backend/internal/utils/mailing"
	"Cookbook-Backend/pkg/jwt"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		GetUsers(ctx context.Context) ([]domain.UserResponse, error)
		GetUser(ctx context.Context, id string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, id string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.AuthResponse{}, domain.ErrEmailAlreadyUsed
		}
		return domain.AuthResponse{}, err
	}

	// Best-effort, never blocks registration
	if err := mailing.SendWelcomeMail(user.Email, user.Username); err != nil {
		log.Errorf("welcome mail to %s failed: %v", user.Email, err)
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.AuthResponse{
		Token:    token,
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrInvalidCredentials
		}
		return domain.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.AuthResponse{
		Token:    token,
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	return s.GetUser(ctx, userID)
}

func (s *userService) GetUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, toUserResponse(user))
	}
	return result, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (domain.UserResponse, error) {
	userUUID, err := uuid.Parse(id)
	if err != nil {
		return domain.UserResponse{}, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.UserResponse, error) {
	userUUID, err := uuid.Parse(id)
	if err != nil {
		return domain.UserResponse{}, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrEmailAlreadyUsed
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	userUUID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.userRepository.GetUserByID(ctx, userUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.userRepository.DeleteUser(ctx, userUUID)
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}
