package config

import "time"

// Defaults returns the built-in configuration the gallery ships with. Every
// field can be overridden by env, flags, or the JSON file.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Admin: Admin{
			DefaultPassword:  "admin123",
			SecurityQuestion: "Який ваш улюблений колір?",
			SecurityAnswer:   "зелений",
			SessionDuration:  7 * 24 * time.Hour,
			MaxLoginAttempts: 5,
			LockoutDuration:  15 * time.Minute,
		},
		Security: Security{
			HashSalt:    "3dprint_gallery_salt_2023",
			TokenIssuer: "3d-gallery",
		},
		Catalog: Catalog{
			InitialLoad:   12,
			ModelsPerLoad: 12,
		},
		Storage: Storage{
			DB: DB{DSN: "gallery.db"},
		},
	}
}
