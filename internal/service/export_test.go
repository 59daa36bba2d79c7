package service

import (
	"context"
	"testing"

	"github.com/VladDatsenko/3d/internal/logger"
	"github.com/VladDatsenko/3d/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportService_Snapshot(t *testing.T) {
	ctx := context.Background()
	persistence := newMemPersistence()
	cfg := testConfig()

	creds := NewCredentialService(cfg.Admin, cfg.Security, persistence, logger.Nop())
	catalog := newTestCatalog(t, persistence)
	catalog.AddFavorite(ctx, "1")

	snapshot := NewExportService(catalog, creds).Snapshot(ctx)

	assert.Len(t, snapshot.Models, 2)
	assert.Equal(t, []string{"1"}, snapshot.Favorites)
	assert.Equal(t, "dpx9rp", snapshot.PasswordChecksum)

	// The "all" entry is rebuilt on load, so the snapshot omits it.
	require.Len(t, snapshot.Categories, 9)
	for _, cat := range snapshot.Categories {
		assert.NotEqual(t, models.AllCategoryID, cat.ID)
	}
}

func TestExportService_Snapshot_FavoritesCopy(t *testing.T) {
	ctx := context.Background()
	persistence := newMemPersistence()
	cfg := testConfig()

	creds := NewCredentialService(cfg.Admin, cfg.Security, persistence, logger.Nop())
	catalog := newTestCatalog(t, persistence)
	catalog.AddFavorite(ctx, "1")

	exporter := NewExportService(catalog, creds)
	snapshot := exporter.Snapshot(ctx)

	// Later mutations never leak into an already taken snapshot.
	catalog.AddFavorite(ctx, "2")
	assert.Equal(t, []string{"1"}, snapshot.Favorites)
}
