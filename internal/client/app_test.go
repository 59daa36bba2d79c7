package client

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/VladDatsenko/3d/internal/config"
	"github.com/VladDatsenko/3d/internal/logger"
	"github.com/VladDatsenko/3d/internal/service"
	"github.com/VladDatsenko/3d/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPersistence struct {
	data map[string]json.RawMessage
}

func (m *memPersistence) Load(_ context.Context, key string, dest any) bool {
	raw, ok := m.data[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (m *memPersistence) Store(_ context.Context, key string, value any) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		return false
	}
	m.data[key] = raw
	return true
}

func (m *memPersistence) Remove(_ context.Context, key string) bool {
	delete(m.data, key)
	return true
}

// runScript feeds commands to the console and returns its output.
func runScript(t *testing.T, commands ...string) (string, *service.Services) {
	t.Helper()

	persistence := &memPersistence{data: make(map[string]json.RawMessage)}
	services := service.NewServices(context.Background(), persistence, *config.Defaults(), logger.Nop())

	var out bytes.Buffer
	app := NewApp(services, logger.Nop())
	app.in = strings.NewReader(strings.Join(commands, "\n") + "\n")
	app.out = &out

	require.NoError(t, app.Run(context.Background()))

	return out.String(), services
}

func TestApp_ListAndSearch(t *testing.T) {
	out, _ := runScript(t, "list", "search ваза", "quit")

	assert.Contains(t, out, `Арт-ваза "Хвиля"`)
	assert.Contains(t, out, "Підставка для телефону")
	// After the search only the vase remains.
	assert.Contains(t, out, "showing 1 model(s)")
}

func TestApp_CategorySelection(t *testing.T) {
	out, services := runScript(t, "category tools", "quit")

	assert.Equal(t, "tools", services.CatalogService.CurrentCategory())
	// The phone stand carries the "організація" tag.
	assert.Contains(t, out, "Підставка для телефону")
}

func TestApp_AdminRequiresLogin(t *testing.T) {
	out, _ := runScript(t, "add-model Тест", "quit")

	assert.Contains(t, out, "admin access required")
}

func TestApp_LoginAndAddModel(t *testing.T) {
	out, services := runScript(t,
		"login admin123",
		"add-model Шестерня",
		"quit",
	)

	assert.Contains(t, out, "ok: login successful")
	assert.Contains(t, out, "created model model_")
	assert.Len(t, services.CatalogService.Models(), 3)
	assert.Equal(t, models.SectionAdmin, services.CatalogService.CurrentSection())
}

func TestApp_WrongPassword(t *testing.T) {
	out, services := runScript(t, "login wrong", "quit")

	assert.Contains(t, out, "failed (invalid_password)")
	assert.Equal(t, 4, services.SessionService.RemainingAttempts())
}

func TestApp_FavoritesRoundTrip(t *testing.T) {
	out, services := runScript(t, "fav 1", "favorites", "fav 1", "quit")

	assert.Contains(t, out, "added to favorites")
	assert.Contains(t, out, "removed from favorites")
	assert.Zero(t, services.CatalogService.FavoriteCount())
}

func TestApp_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")

	out, _ := runScript(t, "login admin123", "export "+path, "quit")
	assert.Contains(t, out, "exported 2 models")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var snapshot models.ExportSnapshot
	require.NoError(t, json.Unmarshal(raw, &snapshot))
	assert.Len(t, snapshot.Models, 2)
	assert.Len(t, snapshot.Categories, 9)
	assert.Equal(t, "dpx9rp", snapshot.PasswordChecksum)
}

func TestApp_UnknownCommand(t *testing.T) {
	out, _ := runScript(t, "frobnicate", "quit")

	assert.Contains(t, out, `unknown command "frobnicate"`)
}
