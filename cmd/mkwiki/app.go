package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/sonnes/mkwiki/config"
	"github.com/sonnes/mkwiki/render"
	htmlrender "github.com/sonnes/mkwiki/render/html"
	jsonrender "github.com/sonnes/mkwiki/render/json"
	"github.com/sonnes/mkwiki/render/terminal"
	"github.com/urfave/cli/v3"
)

// renderers maps the tree command's --format values to index renderers.
var renderers = map[string]func() render.IndexRenderer{
	"terminal": func() render.IndexRenderer { return terminal.New() },
	"json":     func() render.IndexRenderer { return jsonrender.New() },
	"html":     func() render.IndexRenderer { return htmlrender.New(htmlrender.Options{}) },
}

func renderer(name string) (render.IndexRenderer, error) {
	fn, ok := renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return fn(), nil
}

// configFlags are shared by every command that needs build settings.
func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the YAML configuration file (optional when --source and --output are given)",
			Value:   config.DefaultFile,
			Sources: cli.EnvVars("MKWIKI_CONFIG"),
		},
		&cli.StringFlag{
			Name:    "source",
			Aliases: []string{"s"},
			Usage:   "Directory of Markdown documents (source_root)",
			Sources: cli.EnvVars("MKWIKI_SOURCE"),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Directory to write the site to (output_root)",
			Sources: cli.EnvVars("MKWIKI_OUTPUT"),
		},
		&cli.StringFlag{
			Name:    "base-url",
			Usage:   "Prefix for page links; empty keeps links relative (base_url)",
			Sources: cli.EnvVars("MKWIKI_BASE_URL"),
		},
		&cli.StringFlag{
			Name:    "edit-base-url",
			Usage:   "Prefix for per-page edit links (edit_base_url)",
			Sources: cli.EnvVars("MKWIKI_EDIT_BASE_URL"),
		},
		&cli.StringFlag{
			Name:    "readme",
			Usage:   "Source-root document shown below the index (readme_file_name)",
			Sources: cli.EnvVars("MKWIKI_README"),
		},
	}
}

// loadConfig reads the config file named by --config and applies flag
// overrides. A missing file is only an error when it was set explicitly.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")
	cfg, err := config.Load(path)
	switch {
	case err == nil:
		log.Debug("loaded config", "path", path)
	case errors.Is(err, fs.ErrNotExist) && !cmd.IsSet("config"):
		def := config.Default()
		cfg = &def
	default:
		return nil, err
	}

	if v := cmd.String("source"); v != "" {
		cfg.SourceRoot = v
	}
	if v := cmd.String("output"); v != "" {
		cfg.OutputRoot = v
	}
	if cmd.IsSet("base-url") {
		cfg.BaseURL = cmd.String("base-url")
	}
	if cmd.IsSet("edit-base-url") {
		cfg.EditBaseURL = cmd.String("edit-base-url")
	}
	if v := cmd.String("readme"); v != "" {
		cfg.ReadmeFileName = v
	}
	return cfg, nil
}

// localBaseURL returns the absolute output path, used as base_url so the
// site can be browsed straight from disk.
func localBaseURL(outputRoot string) (string, error) {
	abs, err := filepath.Abs(outputRoot)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(abs), nil
}

// ensureDir fails early with a readable message when dir is missing.
func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("source root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source root %s is not a directory", dir)
	}
	return nil
}
