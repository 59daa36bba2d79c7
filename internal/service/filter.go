package service

import (
	"strings"

	"github.com/VladDatsenko/3d/models"
)

// FilterModels computes the ordered subset of all models visible under the
// given free-text query, category selection and facet. The result preserves
// the input order; a model is visible only when all three predicates match.
func FilterModels(all []models.Model, query string, tagIndex map[string][]string, category string, facet models.Facet) []models.Model {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Model, 0, len(all))
	for _, m := range all {
		if matchesQuery(m, query) && matchesCategory(m, tagIndex, category) && matchesFacet(m, facet) {
			out = append(out, m)
		}
	}

	return out
}

// matchesQuery is a case-insensitive substring test over title, author,
// description and every tag. A blank query matches everything.
func matchesQuery(m models.Model, query string) bool {
	if query == "" {
		return true
	}

	if strings.Contains(strings.ToLower(m.Title), query) ||
		strings.Contains(strings.ToLower(m.Author), query) ||
		strings.Contains(strings.ToLower(m.Description), query) {
		return true
	}

	for _, tag := range m.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}

	return false
}

// matchesCategory tests tag-based membership: some category tag must be a
// case-insensitive substring of some model tag. "all" bypasses the test.
// A category with no tags (or one absent from the index) matches nothing.
func matchesCategory(m models.Model, tagIndex map[string][]string, category string) bool {
	if category == models.AllCategoryID {
		return true
	}

	return tagsOverlap(tagIndex[category], m.Tags)
}

// tagsOverlap reports whether some needle is a case-insensitive substring
// of some hay tag.
func tagsOverlap(needles, hay []string) bool {
	for _, needle := range needles {
		needle = strings.ToLower(needle)
		for _, tag := range hay {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
	}

	return false
}

// matchesFacet recognizes exactly the three declared facets; anything else
// matches nothing rather than silently behaving like "all".
func matchesFacet(m models.Model, facet models.Facet) bool {
	switch facet {
	case models.FacetAll:
		return true
	case models.FacetFeatured:
		return m.Featured
	case models.FacetNew:
		return m.IsNew
	default:
		return false
	}
}

// Refresh recomputes the cached filtered view from the current query,
// category and facet, and resets the pagination cursor to the initial page
// size. Callers invoke it after every batch of structural changes; nothing
// refreshes the view implicitly.
func (c *CatalogService) Refresh(query string) []models.Model {
	c.filtered = FilterModels(c.models, query, c.TagIndex(), c.currentCategory, c.currentFacet)
	c.displayedCount = c.cfg.InitialLoad

	return c.filtered
}

// Filtered returns the cached view from the last Refresh or ResetFilters.
func (c *CatalogService) Filtered() []models.Model {
	return c.filtered
}

// LoadMore advances the pagination cursor by one page.
func (c *CatalogService) LoadMore() {
	c.displayedCount += c.cfg.ModelsPerLoad
}

// HasMore reports whether models beyond the current window remain.
func (c *CatalogService) HasMore() bool {
	return c.displayedCount < len(c.filtered)
}

// VisibleModels returns the paginated window over the cached view.
func (c *CatalogService) VisibleModels() []models.Model {
	if c.displayedCount >= len(c.filtered) {
		return c.filtered
	}

	return c.filtered[:c.displayedCount]
}

// DisplayedCount returns the current pagination cursor.
func (c *CatalogService) DisplayedCount() int {
	return c.displayedCount
}
