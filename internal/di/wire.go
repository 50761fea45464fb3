//go:build wireinject
// +build wireinject

package di

import (
	"github.com/gahoccode/richslow/pkg/config"
	"github.com/gahoccode/richslow/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Market data provider
		ProvideMarketData,

		// Valuation engine
		ProvideAssumptions,
		ProvideValuationService,
		ProvideBetaEstimator,
		ProvideWACCEstimator,

		// Use cases
		ProvideValuationAnalyzer,
		ProvidePriceHistory,
		ProvideIndustryBenchmarker,

		// HTTP handlers
		ProvideValuationHandler,
		ProvidePricesHandler,
		ProvideBenchmarkHandler,
		ProvideRouter,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
