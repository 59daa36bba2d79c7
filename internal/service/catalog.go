package service

import (
	"context"
	"slices"
	"strings"

	"github.com/VladDatsenko/3d/internal/config"
	"github.com/VladDatsenko/3d/internal/logger"
	"github.com/VladDatsenko/3d/internal/store"
	"github.com/VladDatsenko/3d/internal/utils"
	"github.com/VladDatsenko/3d/models"
)

// Placeholder values for model fields the caller left empty.
const (
	defaultModelTitle       = "Нова модель"
	defaultModelAuthor      = "Невідомий автор"
	defaultModelImage       = "https://images.unsplash.com/photo-1589939705388-13b77b3a5d65?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"
	defaultModelDescription = "Опис моделі"
	defaultModelDifficulty  = "Середня"
	defaultUnspecified      = "Не вказано"
)

// CatalogService is the in-memory authority over models, the category
// taxonomy, favorites, the cart and the current view selectors. Every
// mutation is written through to the persistence adapter; a failed write is
// logged by the adapter and never rolls back the in-memory change.
//
// Mutations do not refresh the cached filtered view. Callers change state
// first and call Refresh afterwards, once per batch of changes.
type CatalogService struct {
	cfg         config.Catalog
	persistence Persistence
	ids         *utils.IDGenerator
	logger      *logger.Logger

	models     []models.Model
	categories []models.Category
	favorites  []string
	cart       []string

	filtered        []models.Model
	currentCategory string
	currentFacet    models.Facet
	currentSection  models.Section
	displayedCount  int
}

// NewCatalogService loads the persisted catalog, falling back to the
// built-in sample models and default taxonomy when the store has nothing
// usable, and primes the view with every model visible.
func NewCatalogService(ctx context.Context, catalogCfg config.Catalog, persistence Persistence, logger *logger.Logger) *CatalogService {
	c := &CatalogService{
		cfg:             catalogCfg,
		persistence:     persistence,
		ids:             utils.NewIDGenerator(),
		logger:          logger,
		currentCategory: models.AllCategoryID,
		currentFacet:    models.FacetAll,
		currentSection:  models.SectionMain,
		displayedCount:  catalogCfg.InitialLoad,
	}

	if !c.persistence.Load(ctx, store.KeyModels, &c.models) || len(c.models) == 0 {
		c.logger.Info().Str("func", "NewCatalogService").Msg("no persisted models, using fallback catalog")
		c.models = models.FallbackModels()
	}

	if !c.persistence.Load(ctx, store.KeyCategories, &c.categories) || len(c.categories) == 0 {
		c.categories = models.DefaultCategories()
	}
	c.cleanupCategories()

	c.persistence.Load(ctx, store.KeyFavorites, &c.favorites)
	c.persistence.Load(ctx, store.KeyCart, &c.cart)

	c.filtered = slices.Clone(c.models)

	return c
}

// Models returns the full model list in catalog order.
func (c *CatalogService) Models() []models.Model {
	return c.models
}

// FindModel returns the model with the given id or ErrModelNotFound.
func (c *CatalogService) FindModel(id string) (models.Model, error) {
	for _, m := range c.models {
		if m.ID == id {
			return m, nil
		}
	}

	return models.Model{}, ErrModelNotFound
}

// CreateModel appends a new model built from input. Blank fields receive
// placeholder defaults; the id and the zeroed download counter are always
// assigned here, never taken from the caller.
func (c *CatalogService) CreateModel(ctx context.Context, input models.ModelInput) models.Model {
	m := models.Model{
		ID:          c.ids.ModelID(),
		Title:       orDefault(input.Title, defaultModelTitle),
		Author:      orDefault(input.Author, defaultModelAuthor),
		Image:       orDefault(input.Image, defaultModelImage),
		Description: orDefault(input.Description, defaultModelDescription),
		PrintTime:   orDefault(input.PrintTime, defaultUnspecified),
		Weight:      orDefault(input.Weight, defaultUnspecified),
		Difficulty:  orDefault(input.Difficulty, defaultModelDifficulty),
		Downloads:   "0",
		Dimensions:  orDefault(input.Dimensions, defaultUnspecified),
		Formats:     input.Formats,
		Tags:        input.Tags,
		Featured:    input.Featured,
		IsNew:       input.IsNew,
	}
	if len(m.Formats) == 0 {
		m.Formats = []string{"STL"}
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}

	c.models = append(c.models, m)
	c.saveModels(ctx)
	c.logger.Info().Str("func", "CatalogService.CreateModel").Str("model_id", m.ID).Msg("model created")

	return m
}

// UpdateModel merges patch into the stored model. The id and the download
// counter always survive the merge untouched.
func (c *CatalogService) UpdateModel(ctx context.Context, id string, patch models.ModelPatch) (models.Model, error) {
	idx := slices.IndexFunc(c.models, func(m models.Model) bool { return m.ID == id })
	if idx == -1 {
		return models.Model{}, ErrModelNotFound
	}

	m := &c.models[idx]
	applyString(&m.Title, patch.Title)
	applyString(&m.Author, patch.Author)
	applyString(&m.Image, patch.Image)
	applyString(&m.Description, patch.Description)
	applyString(&m.PrintTime, patch.PrintTime)
	applyString(&m.Weight, patch.Weight)
	applyString(&m.Difficulty, patch.Difficulty)
	applyString(&m.Dimensions, patch.Dimensions)
	if patch.Formats != nil {
		m.Formats = patch.Formats
	}
	if patch.Tags != nil {
		m.Tags = patch.Tags
	}
	if patch.Featured != nil {
		m.Featured = *patch.Featured
	}
	if patch.IsNew != nil {
		m.IsNew = *patch.IsNew
	}

	c.saveModels(ctx)

	return *m, nil
}

// DeleteModel removes the model and purges its id from favorites and cart.
func (c *CatalogService) DeleteModel(ctx context.Context, id string) bool {
	idx := slices.IndexFunc(c.models, func(m models.Model) bool { return m.ID == id })
	if idx == -1 {
		return false
	}

	c.models = slices.Delete(c.models, idx, idx+1)
	c.RemoveFavorite(ctx, id)
	c.RemoveFromCart(ctx, id)
	c.saveModels(ctx)
	c.logger.Info().Str("func", "CatalogService.DeleteModel").Str("model_id", id).Msg("model deleted")

	return true
}

// IncrementDownloads bumps the model's humanized download counter by one:
// the display string is parsed back to an exact integer, incremented and
// re-humanized.
func (c *CatalogService) IncrementDownloads(ctx context.Context, id string) (models.Model, error) {
	idx := slices.IndexFunc(c.models, func(m models.Model) bool { return m.ID == id })
	if idx == -1 {
		return models.Model{}, ErrModelNotFound
	}

	m := &c.models[idx]
	m.Downloads = utils.FormatCounter(utils.ParseCounter(m.Downloads) + 1)
	c.saveModels(ctx)

	return *m, nil
}

// TotalDownloads sums the exact download counts across the catalog.
func (c *CatalogService) TotalDownloads() int {
	var total int
	for _, m := range c.models {
		total += utils.ParseCounter(m.Downloads)
	}

	return total
}

// ModelCategory returns the id of the first category (skipping "all") with
// at least one tag that is a case-insensitive substring of one of the
// model's tags, or "all" when none matches.
func (c *CatalogService) ModelCategory(m models.Model) string {
	for _, cat := range c.categories {
		if cat.ID == models.AllCategoryID || len(cat.Tags) == 0 {
			continue
		}
		if tagsOverlap(cat.Tags, m.Tags) {
			return cat.ID
		}
	}

	return models.AllCategoryID
}

// Favorites and cart are ordered idempotent sets of model ids.

func (c *CatalogService) AddFavorite(ctx context.Context, id string) bool {
	added := addToSet(&c.favorites, id)
	c.saveFavorites(ctx)
	return added
}

func (c *CatalogService) RemoveFavorite(ctx context.Context, id string) bool {
	removed := removeFromSet(&c.favorites, id)
	c.saveFavorites(ctx)
	return removed
}

// ToggleFavorite flips membership and reports the new state.
func (c *CatalogService) ToggleFavorite(ctx context.Context, id string) bool {
	if c.IsFavorite(id) {
		c.RemoveFavorite(ctx, id)
		return false
	}
	c.AddFavorite(ctx, id)
	return true
}

func (c *CatalogService) ClearFavorites(ctx context.Context) {
	c.favorites = nil
	c.saveFavorites(ctx)
}

func (c *CatalogService) IsFavorite(id string) bool {
	return slices.Contains(c.favorites, id)
}

func (c *CatalogService) FavoriteCount() int {
	return len(c.favorites)
}

// FavoriteModels projects the favorites set onto the model list, preserving
// catalog order and skipping ids whose model no longer exists.
func (c *CatalogService) FavoriteModels() []models.Model {
	return c.projectIDs(c.favorites)
}

func (c *CatalogService) AddToCart(ctx context.Context, id string) bool {
	added := addToSet(&c.cart, id)
	c.saveCart(ctx)
	return added
}

func (c *CatalogService) RemoveFromCart(ctx context.Context, id string) bool {
	removed := removeFromSet(&c.cart, id)
	c.saveCart(ctx)
	return removed
}

func (c *CatalogService) ClearCart(ctx context.Context) {
	c.cart = nil
	c.saveCart(ctx)
}

func (c *CatalogService) InCart(id string) bool {
	return slices.Contains(c.cart, id)
}

func (c *CatalogService) CartCount() int {
	return len(c.cart)
}

func (c *CatalogService) CartModels() []models.Model {
	return c.projectIDs(c.cart)
}

// View selectors. Changing one invalidates the cached filtered view; the
// caller refreshes afterwards.

func (c *CatalogService) SetCategory(id string) {
	c.currentCategory = id
}

func (c *CatalogService) CurrentCategory() string {
	return c.currentCategory
}

func (c *CatalogService) SetFacet(f models.Facet) {
	c.currentFacet = f
}

func (c *CatalogService) CurrentFacet() models.Facet {
	return c.currentFacet
}

func (c *CatalogService) SetSection(s models.Section) {
	c.currentSection = s
}

func (c *CatalogService) CurrentSection() models.Section {
	return c.currentSection
}

// ResetFilters puts the selectors back to their initial values and makes
// every model visible again.
func (c *CatalogService) ResetFilters() {
	c.currentCategory = models.AllCategoryID
	c.currentFacet = models.FacetAll
	c.filtered = slices.Clone(c.models)
	c.displayedCount = c.cfg.InitialLoad
}

func (c *CatalogService) projectIDs(ids []string) []models.Model {
	out := make([]models.Model, 0, len(ids))
	for _, m := range c.models {
		if slices.Contains(ids, m.ID) {
			out = append(out, m)
		}
	}

	return out
}

func (c *CatalogService) saveModels(ctx context.Context) {
	c.persistence.Store(ctx, store.KeyModels, c.models)
}

func (c *CatalogService) saveFavorites(ctx context.Context) {
	c.persistence.Store(ctx, store.KeyFavorites, c.favorites)
}

func (c *CatalogService) saveCart(ctx context.Context) {
	c.persistence.Store(ctx, store.KeyCart, c.cart)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func addToSet(set *[]string, id string) bool {
	if slices.Contains(*set, id) {
		return false
	}
	*set = append(*set, id)
	return true
}

func removeFromSet(set *[]string, id string) bool {
	idx := slices.Index(*set, id)
	if idx == -1 {
		return false
	}
	*set = slices.Delete(*set, idx, idx+1)
	return true
}
