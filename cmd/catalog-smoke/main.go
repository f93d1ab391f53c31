package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/client"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/config"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/log"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/telemetry"
	"github.com/tuanvumaihuynh/catalog-e2e/pkg/correlationid"
	"github.com/tuanvumaihuynh/catalog-e2e/pkg/zerror"
)

var errSmokeFailed = errors.New("smoke pass failed")

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running catalog smoke pass: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	time.Local = time.UTC

	type Config struct {
		Log     config.Log
		Otel    config.Otel
		Catalog config.Catalog
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		// the run context may already be cancelled, spans still need flushing
		if err := cleanupTracer(context.Background()); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	c := client.New(cfg.Catalog, logger)

	ctx, span := otel.Tracer("cmd/catalog-smoke").Start(ctx, "smoke pass")
	defer span.End()
	ctx, _ = correlationid.Ensure(ctx)

	logger.InfoContext(ctx, "starting smoke pass",
		slog.String("base_url", c.BaseURL()),
		slog.Duration("response_time_limit", cfg.Catalog.ResponseTimeLimit))

	var failed, slow int
	for _, p := range probes(cfg.Catalog.ResponseTimeLimit) {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		start := time.Now()
		err := p.run(ctx, c)
		attrs := []any{slog.String("probe", p.name), slog.Duration("elapsed", time.Since(start))}

		switch {
		case err == nil:
			logger.InfoContext(ctx, "probe passed", attrs...)
		case zerror.KindOf(err) == zerror.KindTimingViolation:
			slow++
			logger.WarnContext(ctx, "probe slow", append(attrs, slog.Any("error", err))...)
		default:
			failed++
			logger.ErrorContext(ctx, "probe failed",
				append(attrs, slog.String("kind", zerror.KindOf(err).String()), slog.Any("error", err))...)
		}
	}

	logger.InfoContext(ctx, "smoke pass finished", slog.Int("failed", failed), slog.Int("slow", slow))
	if failed > 0 {
		return fmt.Errorf("%w: %d probe(s) failed", errSmokeFailed, failed)
	}

	return nil
}
