package handlers

import (
	"Cookbook-Backend/domain"
	"Cookbook-Backend/internal/api/presenters"
	"Cookbook-Backend/pkg/catalog"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		GetUnits(c *fiber.Ctx) error

		GetUtensils(c *fiber.Ctx) error
		CreateUtensil(c *fiber.Ctx) error
		UpdateUtensil(c *fiber.Ctx) error
		DeleteUtensil(c *fiber.Ctx) error

		GetRecipeCategories(c *fiber.Ctx) error
		CreateRecipeCategory(c *fiber.Ctx) error
		UpdateRecipeCategory(c *fiber.Ctx) error
		DeleteRecipeCategory(c *fiber.Ctx) error

		GetIngredientCategories(c *fiber.Ctx) error
		CreateIngredientCategory(c *fiber.Ctx) error
		UpdateIngredientCategory(c *fiber.Ctx) error
		DeleteIngredientCategory(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) parseName(c *fiber.Ctx) (*domain.NameRequest, error) {
	req := new(domain.NameRequest)
	if err := c.BodyParser(req); err != nil {
		return nil, err
	}
	if err := h.validator.Struct(req); err != nil {
		return nil, err
	}
	return req, nil
}

func notFoundStatus(err error) int {
	if errors.Is(err, domain.ErrUtensilNotFound) || errors.Is(err, domain.ErrCategoryNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

func (h *catalogHandler) GetUnits(c *fiber.Ctx) error {
	res, err := h.catalogService.GetUnits(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUnits, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUnits)
}

func (h *catalogHandler) GetUtensils(c *fiber.Ctx) error {
	res, err := h.catalogService.GetUtensils(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUtensils, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUtensils)
}

func (h *catalogHandler) CreateUtensil(c *fiber.Ctx) error {
	req, err := h.parseName(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveUtensil, err)
	}

	res, err := h.catalogService.CreateUtensil(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveUtensil, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveUtensil)
}

func (h *catalogHandler) UpdateUtensil(c *fiber.Ctx) error {
	req, err := h.parseName(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveUtensil, err)
	}

	res, err := h.catalogService.UpdateUtensil(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, notFoundStatus(err), domain.MessageFailedSaveUtensil, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveUtensil)
}

func (h *catalogHandler) DeleteUtensil(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteUtensil(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, notFoundStatus(err), domain.MessageFailedDeleteUtensil, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteUtensil)
}

func (h *catalogHandler) GetRecipeCategories(c *fiber.Ctx) error {
	res, err := h.catalogService.GetRecipeCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategories, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *catalogHandler) CreateRecipeCategory(c *fiber.Ctx) error {
	req, err := h.parseName(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveCategory, err)
	}

	res, err := h.catalogService.CreateRecipeCategory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveCategory, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveCategory)
}

func (h *catalogHandler) UpdateRecipeCategory(c *fiber.Ctx) error {
	req, err := h.parseName(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveCategory, err)
	}

	res, err := h.catalogService.UpdateRecipeCategory(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, notFoundStatus(err), domain.MessageFailedSaveCategory, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveCategory)
}

func (h *catalogHandler) DeleteRecipeCategory(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteRecipeCategory(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, notFoundStatus(err), domain.MessageFailedDeleteCategory, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}

func (h *catalogHandler) GetIngredientCategories(c *fiber.Ctx) error {
	res, err := h.catalogService.GetIngredientCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategories, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *catalogHandler) CreateIngredientCategory(c *fiber.Ctx) error {
	req, err := h.parseName(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveCategory, err)
	}

	res, err := h.catalogService.CreateIngredientCategory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveCategory, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveCategory)
}

func (h *catalogHandler) UpdateIngredientCategory(c *fiber.Ctx) error {
	req, err := h.parseName(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveCategory, err)
	}

	res, err := h.catalogService.UpdateIngredientCategory(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, notFoundStatus(err), domain.MessageFailedSaveCategory, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveCategory)
}

func (h *catalogHandler) DeleteIngredientCategory(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteIngredientCategory(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, notFoundStatus(err), domain.MessageFailedDeleteCategory, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}
