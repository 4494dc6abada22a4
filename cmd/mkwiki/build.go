package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/sonnes/mkwiki/site"
	"github.com/urfave/cli/v3"
)

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Convert the source tree into a static wiki",
		Description: `Scans the source root for Markdown documents, writes one HTML page per
document to the output root and generates index.html. Hidden files and
directories are ignored.`,
		Flags: append(configFlags(),
			&cli.BoolFlag{
				Name:  "local",
				Usage: "Use the absolute output path as base_url for browsing from disk",
			},
			&cli.BoolFlag{
				Name:  "manifest",
				Usage: "Also write manifest.json listing every page",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Bool("local") {
				base, err := localBaseURL(cfg.OutputRoot)
				if err != nil {
					return fmt.Errorf("resolve output root: %w", err)
				}
				cfg.BaseURL = base
			}
			if cmd.Bool("manifest") {
				cfg.Manifest = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := ensureDir(cfg.SourceRoot); err != nil {
				return err
			}

			res, err := site.New(*cfg).Build(ctx)
			if err != nil {
				return fmt.Errorf("build: %w", err)
			}

			log.Info("built wiki",
				"pages", len(res.Documents),
				"readme", res.Readme,
				"index", res.IndexPath,
			)
			if res.ManifestPath != "" {
				log.Info("wrote manifest", "path", res.ManifestPath)
			}
			return nil
		},
	}
}
