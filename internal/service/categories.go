package service

import (
	"context"
	"slices"

	"github.com/VladDatsenko/3d/internal/store"
	"github.com/VladDatsenko/3d/models"
)

// Placeholder values for a freshly created category.
const (
	defaultCategoryName  = "Нова категорія"
	defaultCategoryIcon  = "fa-cube"
	defaultCategoryColor = "#44d62c"
)

// Categories returns the taxonomy in display order, "all" first.
func (c *CatalogService) Categories() []models.Category {
	return c.categories
}

// FindCategory returns the category with the given id or ErrCategoryNotFound.
func (c *CatalogService) FindCategory(id string) (models.Category, error) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, nil
		}
	}

	return models.Category{}, ErrCategoryNotFound
}

// CreateCategory appends a new unlocked category. Placeholder fields are
// used wherever the patch leaves a field unset.
func (c *CatalogService) CreateCategory(ctx context.Context, patch models.CategoryPatch) models.Category {
	cat := models.Category{
		ID:    c.ids.CategoryID(),
		Name:  defaultCategoryName,
		Icon:  defaultCategoryIcon,
		Color: defaultCategoryColor,
		Tags:  []string{},
	}
	applyCategoryPatch(&cat, patch)

	c.categories = append(c.categories, cat)
	c.saveCategories(ctx)
	c.logger.Info().Str("func", "CatalogService.CreateCategory").Str("category_id", cat.ID).Msg("category created")

	return cat
}

// UpdateCategory merges patch into the stored category. A patch that would
// blank the name is rejected with ErrValidationBlankName and leaves the
// category untouched.
func (c *CatalogService) UpdateCategory(ctx context.Context, id string, patch models.CategoryPatch) (models.Category, error) {
	idx := slices.IndexFunc(c.categories, func(cat models.Category) bool { return cat.ID == id })
	if idx == -1 {
		return models.Category{}, ErrCategoryNotFound
	}

	updated := c.categories[idx]
	applyCategoryPatch(&updated, patch)
	if !updated.Valid() {
		return models.Category{}, ErrValidationBlankName
	}

	c.categories[idx] = updated
	c.saveCategories(ctx)

	return updated, nil
}

// DeleteCategory removes an unlocked category. The built-in "all" category
// and locked categories are rejected. When the deleted category was the
// current selection, the selection falls back to "all".
func (c *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if id == models.AllCategoryID {
		return ErrAllCategoryProtected
	}

	idx := slices.IndexFunc(c.categories, func(cat models.Category) bool { return cat.ID == id })
	if idx == -1 {
		return ErrCategoryNotFound
	}
	if c.categories[idx].IsLocked {
		return ErrCategoryLocked
	}

	c.categories = slices.Delete(c.categories, idx, idx+1)
	if c.currentCategory == id {
		c.currentCategory = models.AllCategoryID
	}
	c.saveCategories(ctx)
	c.logger.Info().Str("func", "CatalogService.DeleteCategory").Str("category_id", id).Msg("category deleted")

	return nil
}

// ToggleLock flips the lock flag. The "all" category must stay locked.
func (c *CatalogService) ToggleLock(ctx context.Context, id string) (bool, error) {
	if id == models.AllCategoryID {
		return false, ErrAllCategoryProtected
	}

	idx := slices.IndexFunc(c.categories, func(cat models.Category) bool { return cat.ID == id })
	if idx == -1 {
		return false, ErrCategoryNotFound
	}

	c.categories[idx].IsLocked = !c.categories[idx].IsLocked
	c.saveCategories(ctx)

	return c.categories[idx].IsLocked, nil
}

// RestoreDefaults replaces the whole taxonomy with the built-in one. A
// current selection that no longer exists falls back to "all".
func (c *CatalogService) RestoreDefaults(ctx context.Context) {
	c.categories = models.DefaultCategories()

	if c.currentCategory != models.AllCategoryID {
		if _, err := c.FindCategory(c.currentCategory); err != nil {
			c.currentCategory = models.AllCategoryID
		}
	}
	c.saveCategories(ctx)
	c.logger.Info().Str("func", "CatalogService.RestoreDefaults").Msg("default taxonomy restored")
}

// TagIndex maps every category id except "all" to its tag list, the shape
// the filter engine consumes. It is rebuilt on demand rather than cached;
// the taxonomy is small.
func (c *CatalogService) TagIndex() map[string][]string {
	index := make(map[string][]string, len(c.categories))
	for _, cat := range c.categories {
		if cat.ID == models.AllCategoryID {
			continue
		}
		index[cat.ID] = cat.Tags
	}

	return index
}

// cleanupCategories drops malformed entries. It runs on load and before
// every category persist, so a corrupted record never outlives the session
// that noticed it.
func (c *CatalogService) cleanupCategories() {
	kept := c.categories[:0]
	for _, cat := range c.categories {
		if cat.Valid() {
			kept = append(kept, cat)
		} else {
			c.logger.Warn().Str("func", "CatalogService.cleanupCategories").Str("category_id", cat.ID).Msg("dropping malformed category")
		}
	}
	c.categories = kept
}

func (c *CatalogService) saveCategories(ctx context.Context) {
	c.cleanupCategories()
	c.persistence.Store(ctx, store.KeyCategories, c.categories)
}

func applyCategoryPatch(cat *models.Category, patch models.CategoryPatch) {
	applyString(&cat.Name, patch.Name)
	applyString(&cat.Icon, patch.Icon)
	applyString(&cat.Color, patch.Color)
	if patch.Tags != nil {
		cat.Tags = patch.Tags
	}
}
