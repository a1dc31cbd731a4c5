// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// catalogCommand handles catalog operations
func catalogCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "catalog",
		Aliases: []string{"games"},
		Usage:   "Browse and manage the game catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the catalog or one of its derived views",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:  "view",
						Usage: "View to list: all, popular, downloaded, upcoming",
						Value: "all",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CatalogList,
			},
			{
				Name:  "show",
				Usage: "Show one game by id",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags:  []cli.Flag{configFlag()},
				Action: r.CatalogShow,
			},
			{
				Name:  "add",
				Usage: "Add a game to the catalog (requires login)",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Game title",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "description",
						Aliases: []string{"d"},
						Usage:   "Game description",
					},
					&cli.StringFlag{
						Name:  "release-date",
						Usage: "Release date (YYYY-MM-DD)",
					},
					&cli.FloatFlag{
						Name:  "rating",
						Usage: "Rating between 0 and 5",
					},
					&cli.IntFlag{
						Name:  "downloads",
						Usage: "Download count",
					},
					&cli.BoolFlag{
						Name:  "coming-soon",
						Usage: "Mark the game as not yet released",
					},
					&cli.StringFlag{
						Name:  "image",
						Usage: "Cover image URL",
					},
					&cli.StringSliceFlag{
						Name:  "platform",
						Usage: "Platform (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "tag",
						Usage: "Tag (repeatable)",
					},
				},
				Action: r.CatalogAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a game by id (requires login)",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Game id to remove",
						Required: true,
					},
				},
				Action: r.CatalogRemove,
			},
			{
				Name:  "refresh",
				Usage: "Replace the local catalog with the remote listing",
				Flags: []cli.Flag{
					configFlag(),
				},
				Action: r.CatalogRefresh,
			},
			{
				Name:  "export",
				Usage: "Export the catalog",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: csv, markdown, txt",
						Value:   "txt",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (default: stdout)",
					},
				},
				Action: r.CatalogExport,
			},
		},
	}
}

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage accounts and the current session",
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Register a new account",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Display name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Usage:    "Email address (unique)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Usage:    "Password",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "avatar",
						Usage: "Avatar image URL",
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:  "login",
				Usage: "Log in and persist the session",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:     "email",
						Usage:    "Email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Usage:    "Password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Clear the persisted session",
				Flags:  []cli.Flag{configFlag()},
				Action: r.AuthLogout,
			},
			{
				Name:   "whoami",
				Usage:  "Show the current session",
				Flags:  []cli.Flag{configFlag()},
				Action: r.AuthWhoami,
			},
		},
	}
}

// setupCommand handles setup operations for configuration and database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Create config.toml and initialize the database",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

// tuiCommand returns the top-level TUI command for interactive catalog browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "browse"},
		Usage:   "Launch interactive catalog browser",
		Flags:   []cli.Flag{configFlag()},
		Action:  r.TUI,
	}
}
