package comment

import (
	"Cookbook-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommentRepository interface {
		GetCommentsByVersion(ctx context.Context, versionID uuid.UUID) ([]*entities.Comment, error)
		GetCommentByID(ctx context.Context, id uuid.UUID) (*entities.Comment, error)
		CreateComment(ctx context.Context, comment *entities.Comment) error
		UpdateComment(ctx context.Context, comment *entities.Comment) error
		DeleteComment(ctx context.Context, id uuid.UUID) error
		VersionExists(ctx context.Context, versionID uuid.UUID) (bool, error)
	}

	commentRepository struct {
		db *gorm.DB
	}
)

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) GetCommentsByVersion(ctx context.Context, versionID uuid.UUID) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("version_id = ?", versionID).
		Order("created_at desc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) GetCommentByID(ctx context.Context, id uuid.UUID) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) UpdateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepository) DeleteComment(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Comment{}, "id = ?", id).Error
}

func (r *commentRepository) VersionExists(ctx context.Context, versionID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Version{}).
		Where("id = ?", versionID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
