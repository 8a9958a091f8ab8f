package handlers

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/internal/api/presenters"
	"Cookbook-Backend/pkg/comment"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CommentHandler interface {
		GetVersionComments(c *fiber.Ctx) error
		CreateComment(c *fiber.Ctx) error
		UpdateComment(c *fiber.Ctx) error
		DeleteComment(c *fiber.Ctx) error
	}

	commentHandler struct {
		commentService comment.CommentService
		validator      *validator.Validate
	}
)

func NewCommentHandler(commentService comment.CommentService, validator *validator.Validate) CommentHandler {
	return &commentHandler{
		commentService: commentService,
		validator:      validator,
	}
}

func (h *commentHandler) GetVersionComments(c *fiber.Ctx) error {
	versionID := c.Params("version_id")

	res, err := h.commentService.GetVersionComments(c.Context(), versionID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetComments, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetComments)
}

func (h *commentHandler) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateComment, err)
	}

	res, err := h.commentService.CreateComment(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrVersionNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateComment, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateComment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateComment)
}

func (h *commentHandler) UpdateComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	commentID := c.Params("id")
	req := new(domain.UpdateCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateComment, err)
	}

	res, err := h.commentService.UpdateComment(c.Context(), commentID, *req, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCommentNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateComment, err)
		case errors.Is(err, domain.ErrUserNotAllowed):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateComment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateComment)
}

func (h *commentHandler) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	commentID := c.Params("id")

	if err := h.commentService.DeleteComment(c.Context(), commentID, userID, role); err != nil {
		switch {
		case errors.Is(err, domain.ErrCommentNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteComment, err)
		case errors.Is(err, domain.ErrUserNotAllowed):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteComment, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteComment)
}
