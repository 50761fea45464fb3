package valuation

import (
	"time"

	"github.com/gahoccode/richslow/internal/domain/models"
	"github.com/gahoccode/richslow/internal/domain/repository"
	domsvc "github.com/gahoccode/richslow/internal/domain/service"
	applogger "github.com/gahoccode/richslow/pkg/logger"
)

// Service estimates beta and weighted average cost of capital from provider
// market data. It holds no per-request state and is safe for concurrent use.
type Service struct {
	market repository.MarketData
	assum  models.MarketAssumptions
	minObs int
	l      *applogger.Logger
	m      repository.Metrics
}

// New builds a Service over the given market data source. A non-positive
// minObs falls back to DefaultMinObservations.
func New(market repository.MarketData, assum models.MarketAssumptions, minObs int) *Service {
	if minObs <= 0 {
		minObs = DefaultMinObservations
	}
	return &Service{market: market, assum: assum, minObs: minObs}
}

// SetLogger injects a structured logger.
func (s *Service) SetLogger(l *applogger.Logger) { s.l = l }

// SetMetrics injects a metrics recorder for estimator latency and errors.
func (s *Service) SetMetrics(m repository.Metrics) { s.m = m }

// observeCalc records one estimator run. Call it deferred with the named
// error result so failures are counted on every return path.
func (s *Service) observeCalc(op string, start time.Time, err error) {
	if s.m == nil {
		return
	}
	s.m.RecordCalcLatency(op, time.Since(start).Seconds())
	if err != nil {
		s.m.RecordCalcError(op)
	}
}

// Assumptions returns the process-wide market parameter set.
func (s *Service) Assumptions() models.MarketAssumptions { return s.assum }

// MinObservations returns the configured regression observation threshold.
func (s *Service) MinObservations() int { return s.minObs }

var (
	_ domsvc.BetaEstimator = (*Service)(nil)
	_ domsvc.WACCEstimator = (*Service)(nil)
)
