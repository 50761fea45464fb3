package repository

import (
	"context"
	"time"

	"github.com/gahoccode/richslow/internal/domain/models"
)

// MarketData provides read-only access to Vietnamese market data: quote
// history, financial statements and industry classifications.
type MarketData interface {
	PriceHistory(ctx context.Context, symbol string, from, to time.Time, iv Interval) ([]models.PricePoint, error)
	FinanceRatios(ctx context.Context, symbol string, period Period) ([]models.RatioRow, error)
	BalanceSheet(ctx context.Context, symbol string, period Period) ([]models.BalanceRow, error)
	CompanyProfile(ctx context.Context, symbol string) (*models.CompanyProfile, error)
	Industries(ctx context.Context) ([]models.IndustryClass, error)
	SymbolsByIndustry(ctx context.Context) ([]models.IndustrySymbol, error)
	AllSymbols(ctx context.Context) ([]models.ListedSymbol, error)
}

type Metrics interface {
	RecordProviderRequest(endpoint, status string)
	RecordProviderLatency(endpoint string, seconds float64)
	RecordCalcError(op string)
	RecordCalcLatency(op string, seconds float64)
}
