package handlers

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/internal/api/presenters"
	"Cookbook-Backend/pkg/recipe"
	"encoding/json"
	"errors"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetAllRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		GetUserRecipes(c *fiber.Ctx) error
		GetAdminRecipes(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

// parseRecipeForm reads the multipart form: recipe fields travel as a JSON
// string under "recipe_data", the image as an optional file part.
func (h *recipeHandler) parseRecipeForm(c *fiber.Ctx) (*domain.CreateRecipeRequest, *multipart.FileHeader, error) {
	raw := c.FormValue("recipe_data")
	if raw == "" {
		return nil, nil, errors.New(domain.MessageFailedRecipeDataMissing)
	}

	req := new(domain.CreateRecipeRequest)
	if err := json.Unmarshal([]byte(raw), req); err != nil {
		return nil, nil, err
	}

	if err := h.validator.Struct(req); err != nil {
		return nil, nil, err
	}

	// Missing image part is fine
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}
	return req, image, nil
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetAllRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetAllRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	res, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) GetUserRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.recipeService.GetUserRecipes(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUserRecipes)
}

func (h *recipeHandler) GetAdminRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetAdminRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAdminRecipes)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req, image, err := h.parseRecipeForm(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, image, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	recipeID := c.Params("id")

	req, image, err := h.parseRecipeForm(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), recipeID, *req, image, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecipeNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateRecipe, err)
		case errors.Is(err, domain.ErrUserNotAllowed):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, err)
		case errors.Is(err, domain.ErrVersionConflict):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedUpdateRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	if err := h.recipeService.DeleteRecipe(c.Context(), recipeID); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}
