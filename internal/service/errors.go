package service

import "errors"

// Sentinel errors returned by catalog operations. Callers match them with
// [errors.Is] and render their own messages.
var (
	// ErrModelNotFound is returned when an operation targets a model id
	// absent from the catalog.
	ErrModelNotFound = errors.New("model not found")

	// ErrCategoryNotFound is returned when an operation targets a
	// category id absent from the taxonomy.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryLocked is returned when deleting a locked category.
	ErrCategoryLocked = errors.New("locked categories cannot be deleted")

	// ErrAllCategoryProtected is returned when deleting or unlocking the
	// built-in "all" category.
	ErrAllCategoryProtected = errors.New(`the "all" category is protected`)

	// ErrValidationBlankName is returned when a category update would
	// leave the category without a usable name.
	ErrValidationBlankName = errors.New("category name must not be blank")
)
