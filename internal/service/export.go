package service

import (
	"context"

	"github.com/VladDatsenko/3d/models"
)

// ExportService assembles the backup snapshot. Serialization and file
// writing belong to the presentation layer; the core only hands out data.
type ExportService struct {
	catalog *CatalogService
	creds   CredentialService
}

func NewExportService(catalog *CatalogService, creds CredentialService) *ExportService {
	return &ExportService{catalog: catalog, creds: creds}
}

// Snapshot returns the exportable state: the full model list, the taxonomy
// without the built-in "all" entry, the favorites and the password checksum.
func (e *ExportService) Snapshot(ctx context.Context) models.ExportSnapshot {
	categories := make([]models.Category, 0, len(e.catalog.Categories()))
	for _, cat := range e.catalog.Categories() {
		if cat.ID == models.AllCategoryID {
			continue
		}
		categories = append(categories, cat)
	}

	return models.ExportSnapshot{
		Models:           e.catalog.Models(),
		Categories:       categories,
		Favorites:        append([]string(nil), e.catalog.favorites...),
		PasswordChecksum: e.creds.PasswordChecksum(ctx),
	}
}
