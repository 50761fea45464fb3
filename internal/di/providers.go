package di

import (
	"github.com/gahoccode/richslow/internal/domain/models"
	"github.com/gahoccode/richslow/internal/domain/repository"
	domsvc "github.com/gahoccode/richslow/internal/domain/service"
	"github.com/gahoccode/richslow/internal/handler/api"
	"github.com/gahoccode/richslow/internal/service/vci"
	"github.com/gahoccode/richslow/internal/services/valuation"
	"github.com/gahoccode/richslow/internal/usecase"
	"github.com/gahoccode/richslow/pkg/config"
	xhttp "github.com/gahoccode/richslow/pkg/http"
	applogger "github.com/gahoccode/richslow/pkg/logger"
	"github.com/gahoccode/richslow/pkg/metrics"
	"github.com/gahoccode/richslow/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideMarketData creates the VCI API client.
func ProvideMarketData(cfg *config.Config, m repository.Metrics, l *applogger.Logger) repository.MarketData {
	opts := []vci.ClientOption{
		vci.WithMetrics(m),
		vci.WithLogger(l),
	}
	if cfg.VCI.BaseURL != "" {
		opts = append(opts, vci.WithBaseURL(cfg.VCI.BaseURL))
	}
	if cfg.VCI.Timeout > 0 {
		opts = append(opts, vci.WithTimeout(cfg.VCI.Timeout))
	}
	if cfg.VCI.RateLimit > 0 {
		opts = append(opts, vci.WithRateLimit(cfg.VCI.RateLimit))
	}
	if cfg.VCI.UserAgent != "" {
		opts = append(opts, vci.WithUserAgent(cfg.VCI.UserAgent))
	}
	return vci.NewClient(opts...)
}

// ProvideAssumptions merges configured market parameters over the built-in
// Vietnamese defaults. Zero values in config mean "keep the default".
func ProvideAssumptions(cfg *config.Config) models.MarketAssumptions {
	a := valuation.DefaultAssumptions()
	if cfg.Valuation.BenchmarkSymbol != "" {
		a.BenchmarkSymbol = cfg.Valuation.BenchmarkSymbol
	}
	if cfg.Valuation.TaxRate > 0 {
		a.TaxRate = cfg.Valuation.TaxRate
	}
	if cfg.Valuation.RiskFreeRate > 0 {
		a.RiskFreeRate = cfg.Valuation.RiskFreeRate
	}
	if cfg.Valuation.MarketRiskPremium > 0 {
		a.MarketRiskPremium = cfg.Valuation.MarketRiskPremium
	}
	if cfg.Valuation.CreditSpread > 0 {
		a.CreditSpread = cfg.Valuation.CreditSpread
	}
	return a
}

// ProvideValuationService creates the beta/WACC estimation engine.
func ProvideValuationService(
	market repository.MarketData,
	assum models.MarketAssumptions,
	cfg *config.Config,
	m repository.Metrics,
	l *applogger.Logger,
) *valuation.Service {
	svc := valuation.New(market, assum, cfg.Valuation.MinObservations)
	svc.SetLogger(l)
	svc.SetMetrics(m)
	return svc
}

// ProvideBetaEstimator exposes the valuation service as a beta estimator.
func ProvideBetaEstimator(svc *valuation.Service) domsvc.BetaEstimator {
	return svc
}

// ProvideWACCEstimator exposes the valuation service as a WACC estimator.
func ProvideWACCEstimator(svc *valuation.Service) domsvc.WACCEstimator {
	return svc
}

// ProvideValuationAnalyzer creates the valuation analysis use case.
func ProvideValuationAnalyzer(
	market repository.MarketData,
	beta domsvc.BetaEstimator,
	wacc domsvc.WACCEstimator,
	assum models.MarketAssumptions,
	cfg *config.Config,
	l *applogger.Logger,
) *usecase.ValuationAnalyzer {
	a := usecase.NewValuationAnalyzer(market, beta, wacc, assum, cfg.Valuation.MinObservations)
	a.SetLogger(l)
	return a
}

// ProvidePriceHistory creates the price history use case.
func ProvidePriceHistory(market repository.MarketData, l *applogger.Logger) *usecase.PriceHistory {
	u := usecase.NewPriceHistory(market)
	u.SetLogger(l)
	return u
}

// ProvideIndustryBenchmarker creates the industry benchmark use case.
func ProvideIndustryBenchmarker(market repository.MarketData, cfg *config.Config, l *applogger.Logger) *usecase.IndustryBenchmarker {
	u := usecase.NewIndustryBenchmarker(market, cfg.Benchmark.Workers)
	u.SetLogger(l)
	return u
}

// ProvideValuationHandler creates the valuation HTTP handler.
func ProvideValuationHandler(analyzer *usecase.ValuationAnalyzer, l *applogger.Logger) *api.ValuationEchoHandler {
	h := api.NewValuationEchoHandler(analyzer)
	h.SetLogger(l)
	return h
}

// ProvidePricesHandler creates the price history HTTP handler.
func ProvidePricesHandler(prices *usecase.PriceHistory, l *applogger.Logger) *api.PricesEchoHandler {
	h := api.NewPricesEchoHandler(prices)
	h.SetLogger(l)
	return h
}

// ProvideBenchmarkHandler creates the industry benchmark HTTP handler.
func ProvideBenchmarkHandler(bench *usecase.IndustryBenchmarker, l *applogger.Logger) *api.BenchmarkEchoHandler {
	h := api.NewBenchmarkEchoHandler(bench)
	h.SetLogger(l)
	return h
}

// ProvideRouter bundles all HTTP handlers.
func ProvideRouter(v *api.ValuationEchoHandler, p *api.PricesEchoHandler, b *api.BenchmarkEchoHandler) xhttp.Handler {
	return api.NewRouter(v, p, b)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, handler xhttp.Handler, l *applogger.Logger) *server.App {
	return server.New(cfg, handler, l)
}
