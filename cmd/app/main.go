package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/staticman/internal"
	"github.com/starford/staticman/internal/content"
	pkgconfig "github.com/starford/staticman/pkg/config"
)

var version = "dev"

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if _, err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	// Flags win over the file.
	if p := cmd.String("content"); p != "" {
		cfg.Content.Path = p
	}
	return cfg, nil
}

func options(cmd *cli.Command) ([]internal.Option, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return []internal.Option{
		internal.WithConfig(cfg),
		internal.WithVersion(version),
	}, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func serveMCP(ctx context.Context, cmd *cli.Command) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	return internal.ServeMCP(ctx, opts...)
}

func query(fn internal.QueryFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		opts, err := options(cmd)
		if err != nil {
			return err
		}
		return internal.Query(ctx, fn, opts...)
	}
}

func main() {
	cmd := &cli.Command{
		Name:    "staticman",
		Usage:   "Serve a directory of Markdown entries with YAML headers as structured records",
		Version: version,
		Action:  serve,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "content",
				Usage:   "Content directory (overrides content.path)",
				Sources: cli.EnvVars("CONTENT_PATH"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the HTTP API",
				Action: serve,
			},
			{
				Name:   "mcp",
				Usage:  "Serve MCP tools over stdio",
				Action: serveMCP,
			},
			{
				Name:  "list",
				Usage: "Print every entry as JSON",
				Action: query(func(ctx context.Context, entries *content.Collection) (any, error) {
					return entries.List(ctx)
				}),
			},
			{
				Name:      "get",
				Usage:     "Print the entry with the given slug",
				ArgsUsage: "<slug>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					slug := cmd.Args().First()
					if slug == "" {
						return fmt.Errorf("slug argument is required")
					}
					return query(func(ctx context.Context, entries *content.Collection) (any, error) {
						return entries.Get(ctx, slug)
					})(ctx, cmd)
				},
			},
			{
				Name:  "random",
				Usage: "Print a random entry",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "exclude",
						Usage: "Slug to skip; private entries are skipped too",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					exclude := cmd.String("exclude")
					return query(func(ctx context.Context, entries *content.Collection) (any, error) {
						if cmd.IsSet("exclude") {
							return entries.RandomExcept(ctx, exclude)
						}
						return entries.Random(ctx)
					})(ctx, cmd)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
