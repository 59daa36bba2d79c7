package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error naming the
// broken group otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Admin.DefaultPassword == "" ||
		cfg.Admin.MaxLoginAttempts <= 0 ||
		cfg.Admin.SessionDuration <= 0 ||
		cfg.Admin.LockoutDuration <= 0 {
		return ErrInvalidAdminConfigs
	}

	if strings.TrimSpace(cfg.Security.HashSalt) == "" {
		return ErrInvalidSecurityConfigs
	}

	if cfg.Catalog.InitialLoad <= 0 || cfg.Catalog.ModelsPerLoad <= 0 {
		return ErrInvalidCatalogConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
