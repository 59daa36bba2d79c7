package models

import "strings"

// AllCategoryID is the identifier of the built-in "all models" category.
// Exactly one category carries this ID; it is always locked, always a
// default, never deletable and excluded from tag-membership tests.
const AllCategoryID = "all"

// Category is one entry of the catalog taxonomy. Membership of a model in a
// category is tag-based: a model belongs to a category when at least one of
// the category tags is a case-insensitive substring of one of the model tags.
type Category struct {
	// ID is the unique identifier of the category.
	ID string `json:"id"`

	// Name is the display name of the category.
	Name string `json:"name"`

	// Icon is a font-icon token such as "fa-cube".
	Icon string `json:"icon"`

	// Color is an RGB string such as "#44d62c".
	Color string `json:"color"`

	// Tags is the ordered tag list used for membership tests.
	Tags []string `json:"tags"`

	// IsDefault marks categories from the built-in taxonomy.
	IsDefault bool `json:"isDefault"`

	// IsLocked protects the category from deletion.
	IsLocked bool `json:"isLocked"`
}

// Valid reports whether the category record is well-formed: a non-empty ID
// and a non-blank name. Malformed records are dropped by the catalog's
// cleanup pass before every persist.
func (c Category) Valid() bool {
	return c.ID != "" && strings.TrimSpace(c.Name) != ""
}

// CategoryPatch is a partial update for an existing category. Nil fields are
// left unchanged; the lock flag is toggled by a dedicated operation, not
// patched.
type CategoryPatch struct {
	Name  *string
	Icon  *string
	Color *string
	Tags  []string
}
