package domain

import (
	"errors"

	"github.com/google/uuid"
)

var (
	MessageSuccessGetComments   = "success get comments"
	MessageSuccessCreateComment = "comment created successfully"
	MessageSuccessUpdateComment = "comment updated successfully"
	MessageSuccessDeleteComment = "comment deleted successfully"
	MessageFailedGetComments    = "failed to get comments"
	MessageFailedCreateComment  = "failed to create comment"
	MessageFailedUpdateComment  = "failed to update comment"
	MessageFailedDeleteComment  = "failed to delete comment"

	ErrCommentNotFound = errors.New("comment not found")
	ErrVersionNotFound = errors.New("recipe version not found")
)

type (
	CreateCommentRequest struct {
		CommentText string    `json:"comment_text" validate:"required,min=2,max=1000"`
		Rating      int       `json:"rating" validate:"min=0,max=5"`
		VersionID   uuid.UUID `json:"version_id" validate:"required"`
	}

	UpdateCommentRequest struct {
		CommentText string `json:"comment_text" validate:"required,min=2,max=1000"`
		Rating      int    `json:"rating" validate:"min=0,max=5"`
	}
)
