//go:build unit

package bootstrap_test

import (
	"testing"

	"price-offer/cmd/bootstrap"
	"price-offer/internal/usecase"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestModuleGraph(t *testing.T) {
	t.Setenv("PRICE_TOTAL", "200")

	err := fx.ValidateApp(
		bootstrap.Module,
		fx.NopLogger,
		fx.Invoke(func(usecase.QuoteUseCase) {}),
	)
	require.NoError(t, err)
}
