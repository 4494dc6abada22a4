package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/sonnes/mkwiki/config"
	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "mkwiki",
		Usage: "Turn a directory of Markdown notes into a browsable static wiki",
		Description: `Every Markdown file under the source root becomes one HTML page in a
mirrored directory under the output root. An index.html at the output root
lists all pages as collapsible groups that follow the directory layout,
followed by the rendered README.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			config.LoadEnv()
			return ctx, nil
		},
		Commands: []*cli.Command{
			buildCmd(),
			treeCmd(),
			serveCmd(),
			initCmd(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
