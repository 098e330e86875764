package bootstrap

import (
	"price-offer/internal/pkg/clock"
	"price-offer/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewQuoteUseCase,
	),
)
