package main

import (
	"context"
	"log/slog"
	"os"

	"price-offer/cmd/bootstrap"
	"price-offer/internal/pkg/config"
	"price-offer/internal/pkg/errs"
	"price-offer/internal/usecase"

	"go.uber.org/fx"
)

const maxStackLines = 20

func main() {
	var (
		uc     usecase.QuoteUseCase
		cfg    config.Config
		logger *slog.Logger
	)

	app := fx.New(
		bootstrap.Module,
		fx.NopLogger,
		fx.Populate(&uc, &cfg, &logger),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	exitCode := 0
	// Quote logs the result itself.
	if _, err := uc.Quote(ctx, usecase.QuoteRequest{
		Total:      cfg.Quote.Total,
		Discounts:  cfg.Quote.Discounts,
		PercentOff: cfg.Quote.PercentOff,
	}); err != nil {
		logger.Error("failed to compute quote",
			"error", err,
			"stack", errs.ExtractStackLines(err, maxStackLines),
		)
		exitCode = 1
	}

	if err := app.Stop(ctx); err != nil {
		slog.Error("failed to stop application", "error", err)
	}
	os.Exit(exitCode)
}
