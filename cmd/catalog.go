package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pixelthorn/gdx/internal/formatter"
	"github.com/pixelthorn/gdx/internal/models"
	"github.com/pixelthorn/gdx/internal/shared"
	"github.com/urfave/cli/v3"
)

// CatalogList prints the catalog, optionally narrowed to a derived view.
func (r *Runner) CatalogList(ctx context.Context, cmd *cli.Command) error {
	if err := r.bootstrap(ctx, cmd); err != nil {
		return err
	}

	var games []models.Game
	switch view := cmd.String("view"); view {
	case "", "all":
		games = r.catalog.Snapshot()
	case "popular":
		games = r.catalog.MostPopular()
	case "downloaded":
		games = r.catalog.MostDownloaded()
	case "upcoming":
		games = r.catalog.ComingSoon()
	default:
		return fmt.Errorf("%w: unknown view %q", shared.ErrInvalidFlag, view)
	}

	if cmd.Bool("json") {
		return r.writeJSON(games, cmd.Bool("pretty"))
	}

	text, err := formatter.ExportToText(games)
	if err != nil {
		return err
	}
	return r.writePlain("%s", text)
}

// CatalogShow prints a single game by id.
func (r *Runner) CatalogShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.bootstrap(ctx, cmd); err != nil {
		return err
	}

	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: game id", shared.ErrMissingArgument)
	}

	game, found := r.catalog.GetByID(id)
	if !found {
		return fmt.Errorf("%w: %s", shared.ErrGameNotFound, id)
	}

	return r.writeJSON(game, true)
}

// CatalogAdd adds a game to the catalog. Requires an authenticated session.
func (r *Runner) CatalogAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.bootstrap(ctx, cmd); err != nil {
		return err
	}
	if err := r.requireAuth(); err != nil {
		return err
	}

	game := models.Game{
		Title:       cmd.String("title"),
		Description: cmd.String("description"),
		ReleaseDate: cmd.String("release-date"),
		Rating:      cmd.Float("rating"),
		Downloads:   int(cmd.Int("downloads")),
		ComingSoon:  cmd.Bool("coming-soon"),
		ImageURL:    cmd.String("image"),
		Platforms:   cmd.StringSlice("platform"),
		Tags:        cmd.StringSlice("tag"),
	}

	added, err := r.catalog.Add(game)
	if err != nil {
		return fmt.Errorf("failed to add game: %w", err)
	}

	r.logger.Info("game added", "id", added.ID, "title", added.Title)
	r.writePlain("✓ Added %s (%s)\n", added.Title, added.ID)
	return nil
}

// CatalogRemove removes a game by id. Requires an authenticated session.
func (r *Runner) CatalogRemove(ctx context.Context, cmd *cli.Command) error {
	if err := r.bootstrap(ctx, cmd); err != nil {
		return err
	}
	if err := r.requireAuth(); err != nil {
		return err
	}

	id := cmd.String("id")
	if id == "" {
		return fmt.Errorf("%w: --id", shared.ErrMissingArgument)
	}

	if err := r.catalog.Remove(id); err != nil {
		return fmt.Errorf("failed to remove game: %w", err)
	}

	r.writePlain("✓ Removed %s\n", id)
	return nil
}

// CatalogRefresh replaces the local catalog with the remote listing.
//
// Failures degrade to the local catalog; the command itself only errors when
// the stores cannot be constructed.
func (r *Runner) CatalogRefresh(ctx context.Context, cmd *cli.Command) error {
	if err := r.bootstrap(ctx, cmd); err != nil {
		return err
	}

	before := len(r.catalog.Snapshot())
	games := r.catalog.RefreshFromRemote(ctx)

	r.writePlain("Catalog holds %d games (was %d)\n", len(games), before)
	return nil
}

// CatalogExport writes the catalog to a file or stdout in the chosen format.
func (r *Runner) CatalogExport(ctx context.Context, cmd *cli.Command) error {
	if err := r.bootstrap(ctx, cmd); err != nil {
		return err
	}

	games := r.catalog.Snapshot()

	var data []byte
	var err error
	switch format := cmd.String("format"); format {
	case "csv":
		data, err = formatter.ExportToCSV(games)
	case "markdown", "md":
		data, err = formatter.ExportToMarkdown(r.config.App.Name, games)
	case "txt", "text":
		data, err = formatter.ExportToText(games)
	default:
		err = fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return err
	}

	if outputPath := cmd.String("output"); outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		r.writePlain("✓ Exported %d games to %s\n", len(games), outputPath)
		return nil
	}

	return r.writePlain("%s", data)
}
