package models

// Model represents a single printable 3D model in the catalog.
// JSON tags mirror the record layout used by the persisted store, so a
// catalog exported from an older installation loads without conversion.
type Model struct {
	// ID is the unique identifier of the model within the catalog.
	ID string `json:"id"`

	// Title is the display name of the model.
	Title string `json:"title"`

	// Author is the name of the model's creator.
	Author string `json:"author"`

	// Image is the URL of the preview image.
	Image string `json:"image"`

	// Description is a short free-text description shown on the card.
	Description string `json:"description"`

	// PrintTime is a human-readable estimate, e.g. "8 годин".
	PrintTime string `json:"printTime"`

	// Weight is a human-readable filament weight, e.g. "145 г".
	Weight string `json:"weight"`

	// Difficulty is one of the display labels (easy / medium / hard).
	Difficulty string `json:"difficulty"`

	// Downloads is a humanized counter string such as "2.5K" or "1,000".
	// It stays parseable back to an exact integer; see utils.ParseCounter.
	Downloads string `json:"downloads"`

	// Dimensions is the printed size, e.g. "120x120x180 мм".
	Dimensions string `json:"dimensions"`

	// Formats lists the downloadable file formats in display order.
	Formats []string `json:"formats"`

	// Tags is the ordered list of free-text tags used for search and
	// category membership.
	Tags []string `json:"tags"`

	// Featured marks the model for the "featured" facet.
	Featured bool `json:"featured"`

	// IsNew marks the model for the "new" facet.
	IsNew bool `json:"isNew"`
}

// ModelInput carries the caller-supplied fields for creating a model.
// Empty fields are replaced with catalog defaults; the ID and download
// counter are always assigned by the catalog.
type ModelInput struct {
	Title       string
	Author      string
	Image       string
	Description string
	PrintTime   string
	Weight      string
	Difficulty  string
	Dimensions  string
	Formats     []string
	Tags        []string
	Featured    bool
	IsNew       bool
}

// ModelPatch is a partial update for an existing model. Nil fields are left
// unchanged. The model ID and download counter can never be patched.
type ModelPatch struct {
	Title       *string
	Author      *string
	Image       *string
	Description *string
	PrintTime   *string
	Weight      *string
	Difficulty  *string
	Dimensions  *string
	Formats     []string
	Tags        []string
	Featured    *bool
	IsNew       *bool
}
