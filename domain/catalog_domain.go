package domain

import (
	"errors"
)

var (
	MessageSuccessGetUnits       = "success get units"
	MessageSuccessGetUtensils    = "success get utensils"
	MessageSuccessSaveUtensil    = "utensil saved successfully"
	MessageSuccessDeleteUtensil  = "utensil deleted successfully"
	MessageSuccessGetCategories  = "success get categories"
	MessageSuccessSaveCategory   = "category saved successfully"
	MessageSuccessDeleteCategory = "category deleted successfully"
	MessageFailedGetUnits        = "failed to get units"
	MessageFailedGetUtensils     = "failed to get utensils"
	MessageFailedSaveUtensil     = "failed to save utensil"
	MessageFailedDeleteUtensil   = "failed to delete utensil"
	MessageFailedGetCategories   = "failed to get categories"
	MessageFailedSaveCategory    = "failed to save category"
	MessageFailedDeleteCategory  = "failed to delete category"

	ErrUtensilNotFound  = errors.New("utensil not found")
	ErrCategoryNotFound = errors.New("category not found")
)

type NameRequest struct {
	Name string `json:"name" validate:"required"`
}
