package comment

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommentService interface {
		GetVersionComments(ctx context.Context, versionID string) ([]*entities.Comment, error)
		CreateComment(ctx context.Context, req domain.CreateCommentRequest, userID string) (*entities.Comment, error)
		UpdateComment(ctx context.Context, commentID string, req domain.UpdateCommentRequest, userID string, role string) (*entities.Comment, error)
		DeleteComment(ctx context.Context, commentID string, userID string, role string) error
	}

	commentService struct {
		commentRepository CommentRepository
	}
)

func NewCommentService(commentRepository CommentRepository) CommentService {
	return &commentService{commentRepository: commentRepository}
}

// canModify allows the comment author or an admin.
func canModify(comment *entities.Comment, userID uuid.UUID, role string) bool {
	return comment.UserID == userID || role == domain.RoleAdmin
}

func (s *commentService) GetVersionComments(ctx context.Context, versionID string) ([]*entities.Comment, error) {
	versionUUID, err := uuid.Parse(versionID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.commentRepository.GetCommentsByVersion(ctx, versionUUID)
}

func (s *commentService) CreateComment(ctx context.Context, req domain.CreateCommentRequest, userID string) (*entities.Comment, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	exists, err := s.commentRepository.VersionExists(ctx, req.VersionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrVersionNotFound
	}

	comment := &entities.Comment{
		ID:          uuid.New(),
		VersionID:   req.VersionID,
		UserID:      userUUID,
		CommentText: req.CommentText,
		Rating:      req.Rating,
		CreatedAt:   time.Now(),
	}

	if err := s.commentRepository.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepository.GetCommentByID(ctx, comment.ID)
}

func (s *commentService) UpdateComment(ctx context.Context, commentID string, req domain.UpdateCommentRequest, userID string, role string) (*entities.Comment, error) {
	commentUUID, err := uuid.Parse(commentID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	comment, err := s.commentRepository.GetCommentByID(ctx, commentUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}

	if !canModify(comment, userUUID, role) {
		return nil, domain.ErrUserNotAllowed
	}

	comment.CommentText = req.CommentText
	comment.Rating = req.Rating

	if err := s.commentRepository.UpdateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID string, userID string, role string) error {
	commentUUID, err := uuid.Parse(commentID)
	if err != nil {
		return domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	comment, err := s.commentRepository.GetCommentByID(ctx, commentUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}

	if !canModify(comment, userUUID, role) {
		return domain.ErrUserNotAllowed
	}

	return s.commentRepository.DeleteComment(ctx, commentUUID)
}
