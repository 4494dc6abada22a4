package main

import (
	"context"
	"fmt"

	"github.com/sonnes/mkwiki/config"
	"github.com/urfave/cli/v3"
)

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write an example configuration file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path of the file to create",
				Value:   config.DefaultFile,
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.String("config")
			if err := config.Init(path, cmd.Bool("force")); err != nil {
				return err
			}
			fmt.Printf("Wrote %s. Edit source_root and output_root, then run: mkwiki build\n", path)
			return nil
		},
	}
}
