package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sonnes/mkwiki/config"
	"github.com/sonnes/mkwiki/manifest"
	"github.com/sonnes/mkwiki/render"
	htmlrender "github.com/sonnes/mkwiki/render/html"
	"github.com/sonnes/mkwiki/render/terminal"
	"github.com/sonnes/mkwiki/site"
	"github.com/sonnes/mkwiki/tree"
	"github.com/urfave/cli/v3"
)

func treeCmd() *cli.Command {
	return &cli.Command{
		Name:  "tree",
		Usage: "Print the wiki hierarchy without building",
		Description: `Reads the document list from the source root (or from a manifest.json
written by a previous build) and prints the index hierarchy.`,
		Flags: append(configFlags(),
			&cli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Usage:   "Read pages from this manifest.json instead of scanning",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: terminal, json, html",
				Value: "terminal",
			},
			&cli.StringFlag{
				Name:  "open",
				Usage: "Expand the directories of this page (output path, e.g. guides/setup.html; terminal and html only)",
			},
			&cli.BoolFlag{
				Name:  "collapse",
				Usage: "Hide directories that are not expanded (terminal only)",
			},
			&cli.BoolFlag{
				Name:  "hrefs",
				Usage: "Show link targets (terminal only)",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			paths, err := treePaths(cfg, cmd.String("manifest"))
			if err != nil {
				return err
			}
			t := tree.Build(paths, cfg.BaseURL)

			rnd, err := renderer(cmd.String("format"))
			if err != nil {
				return err
			}
			err = configureRenderer(rnd, t, treeOptions{
				open:      cmd.String("open"),
				collapse:  cmd.Bool("collapse"),
				showHrefs: cmd.Bool("hrefs"),
			})
			if err != nil {
				return err
			}
			return rnd.RenderIndex(os.Stdout, t)
		},
	}
}

// treePaths returns the sorted output paths either from a manifest or by
// scanning the source root.
func treePaths(cfg *config.Config, manifestPath string) ([]string, error) {
	if manifestPath != "" {
		if _, err := os.Stat(manifestPath); err != nil {
			return nil, fmt.Errorf("read manifest: %w", err)
		}
		m, err := manifest.ReadFile(manifestPath)
		if err != nil {
			return nil, fmt.Errorf("read manifest: %w", err)
		}
		return m.Paths(), nil
	}

	if cfg.SourceRoot == "" {
		return nil, fmt.Errorf("one of --source, --config or --manifest is required")
	}
	docs, err := site.Scan(cfg.SourceRoot, cfg.Extension, cfg.OutputRoot)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", cfg.SourceRoot, err)
	}
	return site.Paths(docs), nil
}

type treeOptions struct {
	open      string
	collapse  bool
	showHrefs bool
}

// configureRenderer applies the tree command's display flags to rnd.
func configureRenderer(rnd render.IndexRenderer, t *tree.Tree, opts treeOptions) error {
	var open tree.Expanded
	if opts.open != "" {
		open = t.Expand(opts.open)
	}
	switch r := rnd.(type) {
	case *terminal.Renderer:
		r.Collapse = opts.collapse
		r.ShowHrefs = opts.showHrefs
		r.Open = open
	case *htmlrender.Renderer:
		r.Open = open
	default:
		if opts.open != "" {
			return fmt.Errorf("--open is not supported for this output format")
		}
	}
	return nil
}
