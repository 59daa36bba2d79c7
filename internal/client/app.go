package client

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/VladDatsenko/3d/internal/logger"
	"github.com/VladDatsenko/3d/internal/service"
	"github.com/VladDatsenko/3d/models"
)

type App struct {
	services *service.Services
	logger   *logger.Logger

	in  io.Reader
	out io.Writer

	// query is console-local view state, like the search box in a UI.
	query string
}

func NewApp(services *service.Services, logger *logger.Logger) *App {
	return &App{
		services: services,
		logger:   logger,
		in:       os.Stdin,
		out:      os.Stdout,
	}
}

// Run reads commands line by line until EOF or the exit command. Every
// accepted command counts as user activity for the session heartbeat.
func (a *App) Run(ctx context.Context) error {
	catalog := a.services.CatalogService
	catalog.Refresh(a.query)

	fmt.Fprintln(a.out, "3D Gallery console. Type 'help' for commands.")
	a.printListing()

	scanner := bufio.NewScanner(a.in)
	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		a.services.SessionService.TouchActivity(ctx)
		if err := a.dispatch(ctx, line); err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
	}

	return scanner.Err()
}

func (a *App) dispatch(ctx context.Context, line string) error {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	catalog := a.services.CatalogService
	session := a.services.SessionService

	switch cmd {
	case "help":
		a.printHelp()

	case "list":
		a.printListing()

	case "more":
		catalog.LoadMore()
		a.printListing()

	case "search":
		a.query = arg
		catalog.Refresh(a.query)
		a.printListing()

	case "category":
		if arg == "" {
			arg = models.AllCategoryID
		}
		catalog.SetCategory(arg)
		catalog.Refresh(a.query)
		a.printListing()

	case "facet":
		catalog.SetFacet(models.Facet(arg))
		catalog.Refresh(a.query)
		a.printListing()

	case "reset":
		a.query = ""
		catalog.ResetFilters()
		a.printListing()

	case "categories":
		for _, cat := range catalog.Categories() {
			lock := " "
			if cat.IsLocked {
				lock = "*"
			}
			fmt.Fprintf(a.out, "%s %-14s %s (%s)\n", lock, cat.ID, cat.Name, strings.Join(cat.Tags, ", "))
		}

	case "show":
		m, err := catalog.FindModel(arg)
		if err != nil {
			return err
		}
		a.printModel(m)

	case "download":
		m, err := catalog.IncrementDownloads(ctx, arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "downloading %q (%s downloads)\n", m.Title, m.Downloads)

	case "fav":
		if catalog.ToggleFavorite(ctx, arg) {
			fmt.Fprintln(a.out, "added to favorites")
		} else {
			fmt.Fprintln(a.out, "removed from favorites")
		}

	case "favorites":
		catalog.SetSection(models.SectionFavorites)
		for _, m := range catalog.FavoriteModels() {
			fmt.Fprintf(a.out, "%s  %s\n", m.ID, m.Title)
		}

	case "cart":
		return a.cartCommand(ctx, arg)

	case "login":
		a.printResult(session.AttemptLogin(ctx, arg))

	case "logout":
		session.Logout(ctx)
		fmt.Fprintln(a.out, "logged out")

	case "question":
		fmt.Fprintln(a.out, session.SecurityQuestion())

	case "reset-password":
		answer, newPassword, ok := strings.Cut(arg, " ")
		if !ok {
			return fmt.Errorf("usage: reset-password <answer> <new-password>")
		}
		a.printResult(session.ResetPassword(ctx, answer, newPassword))

	case "change-password":
		current, newPassword, ok := strings.Cut(arg, " ")
		if !ok {
			return fmt.Errorf("usage: change-password <current> <new>")
		}
		a.printResult(session.ChangePassword(ctx, current, newPassword))

	case "add-model", "delete-model", "add-category", "delete-category",
		"lock-category", "restore-categories", "stats":
		return a.adminCommand(ctx, cmd, arg)

	case "export":
		return a.export(ctx, arg)

	default:
		return fmt.Errorf("unknown command %q, try 'help'", cmd)
	}

	return nil
}

func (a *App) cartCommand(ctx context.Context, arg string) error {
	catalog := a.services.CatalogService
	sub, id, _ := strings.Cut(arg, " ")

	switch sub {
	case "add":
		if _, err := catalog.FindModel(id); err != nil {
			return err
		}
		catalog.AddToCart(ctx, id)
	case "remove":
		catalog.RemoveFromCart(ctx, id)
	case "clear":
		catalog.ClearCart(ctx)
	case "", "show":
		catalog.SetSection(models.SectionCart)
		for _, m := range catalog.CartModels() {
			fmt.Fprintf(a.out, "%s  %s\n", m.ID, m.Title)
		}
		fmt.Fprintf(a.out, "%d item(s)\n", catalog.CartCount())
	default:
		return fmt.Errorf("usage: cart [add|remove|clear|show] [id]")
	}

	return nil
}

// adminCommand gates the catalog mutations behind an authenticated session.
func (a *App) adminCommand(ctx context.Context, cmd, arg string) error {
	if !a.services.SessionService.IsAuthenticated(ctx) {
		return fmt.Errorf("admin access required, log in first")
	}
	a.services.CatalogService.SetSection(models.SectionAdmin)
	catalog := a.services.CatalogService

	switch cmd {
	case "add-model":
		m := catalog.CreateModel(ctx, models.ModelInput{Title: arg})
		catalog.Refresh(a.query)
		fmt.Fprintf(a.out, "created model %s\n", m.ID)

	case "delete-model":
		if !catalog.DeleteModel(ctx, arg) {
			return service.ErrModelNotFound
		}
		catalog.Refresh(a.query)
		fmt.Fprintln(a.out, "model deleted")

	case "add-category":
		patch := models.CategoryPatch{}
		if arg != "" {
			patch.Name = &arg
		}
		cat := catalog.CreateCategory(ctx, patch)
		fmt.Fprintf(a.out, "created category %s\n", cat.ID)

	case "delete-category":
		if err := catalog.DeleteCategory(ctx, arg); err != nil {
			return err
		}
		catalog.Refresh(a.query)
		fmt.Fprintln(a.out, "category deleted")

	case "lock-category":
		locked, err := catalog.ToggleLock(ctx, arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "locked: %v\n", locked)

	case "restore-categories":
		catalog.RestoreDefaults(ctx)
		catalog.Refresh(a.query)
		fmt.Fprintln(a.out, "default categories restored")

	case "stats":
		fmt.Fprintf(a.out, "models: %d, categories: %d, favorites: %d, total downloads: %d\n",
			len(catalog.Models()), len(catalog.Categories()),
			catalog.FavoriteCount(), catalog.TotalDownloads())
	}

	return nil
}

// export serializes the snapshot to a JSON file. File IO lives here, not in
// the services.
func (a *App) export(ctx context.Context, path string) error {
	if !a.services.SessionService.IsAuthenticated(ctx) {
		return fmt.Errorf("admin access required, log in first")
	}
	if path == "" {
		return fmt.Errorf("usage: export <path>")
	}

	snapshot := a.services.ExportService.Snapshot(ctx)
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	fmt.Fprintf(a.out, "exported %d models to %s\n", len(snapshot.Models), path)
	a.logger.Info().Str("func", "App.export").Str("path", path).Msg("catalog exported")

	return nil
}

func (a *App) printListing() {
	catalog := a.services.CatalogService
	for _, m := range catalog.VisibleModels() {
		marks := ""
		if m.Featured {
			marks += " [featured]"
		}
		if m.IsNew {
			marks += " [new]"
		}
		fmt.Fprintf(a.out, "%s  %-30s %s, %s downloads%s\n", m.ID, m.Title, m.Author, m.Downloads, marks)
	}

	shown := len(catalog.VisibleModels())
	total := len(catalog.Filtered())
	if catalog.HasMore() {
		fmt.Fprintf(a.out, "showing %d of %d, 'more' to continue\n", shown, total)
	} else {
		fmt.Fprintf(a.out, "showing %d model(s)\n", shown)
	}
}

func (a *App) printModel(m models.Model) {
	fmt.Fprintf(a.out, "%s by %s\n", m.Title, m.Author)
	fmt.Fprintf(a.out, "  %s\n", m.Description)
	fmt.Fprintf(a.out, "  print time: %s, weight: %s, difficulty: %s\n", m.PrintTime, m.Weight, m.Difficulty)
	fmt.Fprintf(a.out, "  dimensions: %s, formats: %s\n", m.Dimensions, strings.Join(m.Formats, ", "))
	fmt.Fprintf(a.out, "  downloads: %s, tags: %s\n", m.Downloads, strings.Join(m.Tags, ", "))
	fmt.Fprintf(a.out, "  category: %s\n", a.services.CatalogService.ModelCategory(m))
}

func (a *App) printResult(result models.AuthResult) {
	if result.Success {
		fmt.Fprintf(a.out, "ok: %s\n", result.Message)
		return
	}
	fmt.Fprintf(a.out, "failed (%s): %s\n", result.Reason, result.Message)
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `browse:
  list | more | search <text> | category <id> | facet <all|featured|new>
  reset | categories | show <id> | download <id>
collections:
  fav <id> | favorites | cart [add|remove|clear|show] [id]
session:
  login <password> | logout | question
  reset-password <answer> <new> | change-password <current> <new>
admin (login required):
  add-model <title> | delete-model <id>
  add-category <name> | delete-category <id> | lock-category <id>
  restore-categories | stats | export <path>
quit
`)
}
