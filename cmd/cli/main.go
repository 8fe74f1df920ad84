package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Sharnika-sree/autoscribe/internal/buildinfo"
	"github.com/Sharnika-sree/autoscribe/internal/client/cli"
	"github.com/Sharnika-sree/autoscribe/internal/client/config"
	"github.com/Sharnika-sree/autoscribe/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.Run(ctx)
	})

	// The welcome announcement waits a beat so it lands after the prompt.
	g.Go(func() error {
		select {
		case <-time.After(time.Second):
			app.AnnouncePageLoad(ctx)
		case <-ctx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("%v", err)
	}
}
