package service

import (
	"context"
	"strings"
	"testing"

	"github.com/VladDatsenko/3d/internal/store"
	"github.com/VladDatsenko/3d/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateCategory(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t, newMemPersistence())

	name := "Мініатюри"
	cat := catalog.CreateCategory(ctx, models.CategoryPatch{
		Name: &name,
		Tags: []string{"мініатюра", "фігурка"},
	})

	assert.True(t, strings.HasPrefix(cat.ID, "custom_"))
	assert.Equal(t, "Мініатюри", cat.Name)
	assert.Equal(t, "fa-cube", cat.Icon)
	assert.False(t, cat.IsLocked)
	assert.False(t, cat.IsDefault)

	found, err := catalog.FindCategory(cat.ID)
	require.NoError(t, err)
	assert.Equal(t, cat, found)
}

func TestCatalogService_CreateCategory_Placeholder(t *testing.T) {
	catalog := newTestCatalog(t, newMemPersistence())

	cat := catalog.CreateCategory(context.Background(), models.CategoryPatch{})

	assert.Equal(t, "Нова категорія", cat.Name)
	assert.Equal(t, "#44d62c", cat.Color)
	assert.Empty(t, cat.Tags)
}

func TestCatalogService_UpdateCategory(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t, newMemPersistence())

	name := "Іграшки та ігри"
	updated, err := catalog.UpdateCategory(ctx, "toys", models.CategoryPatch{
		Name: &name,
		Tags: []string{"іграшки", "настілки"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Іграшки та ігри", updated.Name)
	assert.Equal(t, []string{"іграшки", "настілки"}, updated.Tags)
	// Unpatched fields survive.
	assert.Equal(t, "fa-gamepad", updated.Icon)
	assert.True(t, updated.IsLocked)
}

func TestCatalogService_UpdateCategory_BlankName(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t, newMemPersistence())

	blank := "   "
	_, err := catalog.UpdateCategory(ctx, "toys", models.CategoryPatch{Name: &blank})

	assert.ErrorIs(t, err, ErrValidationBlankName)

	kept, findErr := catalog.FindCategory("toys")
	require.NoError(t, findErr)
	assert.Equal(t, "Іграшки", kept.Name)
}

func TestCatalogService_UpdateCategory_NotFound(t *testing.T) {
	catalog := newTestCatalog(t, newMemPersistence())

	_, err := catalog.UpdateCategory(context.Background(), "missing", models.CategoryPatch{})

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCatalogService_DeleteCategory(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t, newMemPersistence())
	cat := catalog.CreateCategory(ctx, models.CategoryPatch{})

	require.NoError(t, catalog.DeleteCategory(ctx, cat.ID))

	_, err := catalog.FindCategory(cat.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCatalogService_DeleteCategory_Rejections(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t, newMemPersistence())

	assert.ErrorIs(t, catalog.DeleteCategory(ctx, models.AllCategoryID), ErrAllCategoryProtected)
	assert.ErrorIs(t, catalog.DeleteCategory(ctx, "toys"), ErrCategoryLocked)
	assert.ErrorIs(t, catalog.DeleteCategory(ctx, "missing"), ErrCategoryNotFound)
}

func TestCatalogService_DeleteCategory_ResetsSelection(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t, newMemPersistence())
	cat := catalog.CreateCategory(ctx, models.CategoryPatch{})

	catalog.SetCategory(cat.ID)
	require.NoError(t, catalog.DeleteCategory(ctx, cat.ID))

	assert.Equal(t, models.AllCategoryID, catalog.CurrentCategory())
}

func TestCatalogService_ToggleLock(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t, newMemPersistence())

	locked, err := catalog.ToggleLock(ctx, "toys")
	require.NoError(t, err)
	assert.False(t, locked)

	// An unlocked default becomes deletable.
	assert.NoError(t, catalog.DeleteCategory(ctx, "toys"))
}

func TestCatalogService_ToggleLock_AllProtected(t *testing.T) {
	catalog := newTestCatalog(t, newMemPersistence())

	_, err := catalog.ToggleLock(context.Background(), models.AllCategoryID)

	assert.ErrorIs(t, err, ErrAllCategoryProtected)
}

func TestCatalogService_RestoreDefaults(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t, newMemPersistence())

	cat := catalog.CreateCategory(ctx, models.CategoryPatch{})
	catalog.SetCategory(cat.ID)

	catalog.RestoreDefaults(ctx)

	assert.Len(t, catalog.Categories(), 10)
	_, err := catalog.FindCategory(cat.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	// The vanished selection falls back to "all".
	assert.Equal(t, models.AllCategoryID, catalog.CurrentCategory())
}

func TestCatalogService_TagIndex_ExcludesAll(t *testing.T) {
	catalog := newTestCatalog(t, newMemPersistence())

	index := catalog.TagIndex()

	assert.NotContains(t, index, models.AllCategoryID)
	assert.Contains(t, index, "toys")
	assert.Len(t, index, 9)
}

func TestCatalogService_CleanupDropsMalformedCategories(t *testing.T) {
	persistence := newMemPersistence()
	persistence.seed(t, store.KeyCategories, []models.Category{
		{ID: models.AllCategoryID, Name: "Всі", IsLocked: true, IsDefault: true},
		{ID: "", Name: "Без ідентифікатора"},
		{ID: "blank", Name: "   "},
		{ID: "ok", Name: "Нормальна"},
	})

	catalog := newTestCatalog(t, persistence)

	require.Len(t, catalog.Categories(), 2)
	assert.Equal(t, models.AllCategoryID, catalog.Categories()[0].ID)
	assert.Equal(t, "ok", catalog.Categories()[1].ID)
}
