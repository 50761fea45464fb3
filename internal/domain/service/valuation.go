package service

import (
	"context"

	"github.com/gahoccode/richslow/internal/domain/models"
)

// BetaEstimator regresses a stock's daily returns against a market index
// over a date window.
type BetaEstimator interface {
	EstimateBeta(ctx context.Context, ticker, marketSymbol, startDate, endDate string) (models.BetaMetrics, error)
}

// WACCEstimator computes the weighted average cost of capital from the
// latest financial statements and a beta regression.
type WACCEstimator interface {
	EstimateWACC(ctx context.Context, q models.WACCQuery) (models.WACCMetrics, error)
}
