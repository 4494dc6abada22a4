package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sonnes/mkwiki/site"
	"github.com/urfave/cli/v3"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Build the wiki and serve it for local preview",
		Flags: append(configFlags(),
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on",
				Value: 8080,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			// Served pages are reached over HTTP, not from disk.
			cfg.BaseURL = ""
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

			mux := http.NewServeMux()
			mux.Handle("GET /", logRequests(http.FileServer(http.Dir(cfg.OutputRoot))))

			addr := fmt.Sprintf(":%d", cmd.Int("port"))
			srv := &http.Server{Addr: addr, Handler: mux}

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Shutdown(shutdownCtx)
			}()

			log.Info("serving", "addr", "http://localhost"+addr, "pages", len(res.Documents), "dir", cfg.OutputRoot)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
