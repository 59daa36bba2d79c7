package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdminConfigs indicates invalid administrator settings
	// (for example, a zero attempt limit or lockout window).
	ErrInvalidAdminConfigs = errors.New("invalid admin configuration")
	// ErrInvalidSecurityConfigs indicates invalid security settings
	// (for example, an empty checksum salt).
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
	// ErrInvalidCatalogConfigs indicates invalid pagination settings
	// (for example, a zero page size).
	ErrInvalidCatalogConfigs = errors.New("invalid catalog configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
