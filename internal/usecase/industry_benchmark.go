package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/gahoccode/richslow/internal/domain/models"
	domrepo "github.com/gahoccode/richslow/internal/domain/repository"
	"github.com/gahoccode/richslow/internal/services/valuation"
	applogger "github.com/gahoccode/richslow/pkg/logger"
)

var errNoRatioRows = errors.New("no ratio rows returned")

const (
	// DefaultMinCompanies is the company count below which a benchmark is
	// rejected as unrepresentative.
	DefaultMinCompanies = 5
	// DefaultBenchmarkWorkers bounds the concurrent per-peer ratio fetches.
	DefaultBenchmarkWorkers = 4

	maxPeers           = 20
	fallbackSymbolCap  = 50
	minSamplesPerRatio = 3
)

// benchmarkRatioFields lists the ratio columns aggregated into an industry
// benchmark, in response order.
var benchmarkRatioFields = []string{
	"pe_ratio",
	"pb_ratio",
	"ps_ratio",
	"ev_ebitda",
	"roe",
	"roa",
	"roic",
	"gross_margin",
	"operating_margin",
	"net_margin",
	"asset_turnover",
	"inventory_turnover",
	"receivable_turnover",
	"debt_to_equity",
	"debt_to_assets",
	"current_ratio",
	"quick_ratio",
	"cash_conversion_cycle",
}

// defaultPeers is the last-resort peer set when the whole listing surface is
// unreachable. Large liquid tickers so the benchmark stays computable.
var defaultPeers = []string{"VCB", "FPT", "ACB", "BID", "CTG", "HDB", "MBB", "TCB", "VNM", "HPG"}

// IndustryBenchmarker aggregates per-company financial ratios into industry
// level statistics.
type IndustryBenchmarker struct {
	market  domrepo.MarketData
	workers int
	l       *applogger.Logger
}

func NewIndustryBenchmarker(market domrepo.MarketData, workers int) *IndustryBenchmarker {
	if workers <= 0 {
		workers = DefaultBenchmarkWorkers
	}
	return &IndustryBenchmarker{market: market, workers: workers}
}

// SetLogger injects a structured logger.
func (u *IndustryBenchmarker) SetLogger(l *applogger.Logger) { u.l = l }

// ByID benchmarks the industry identified by an ICB classification code. The
// industry name is resolved from the classification listing when known.
func (u *IndustryBenchmarker) ByID(ctx context.Context, industryID, minCompanies int) (models.IndustryBenchmark, error) {
	name := ""
	if classes, err := u.market.Industries(ctx); err == nil {
		code := strconv.Itoa(industryID)
		for _, cl := range classes {
			if cl.Code == code {
				name = cl.Name
				break
			}
		}
	} else if u.l != nil {
		u.l.Warn("benchmark.classifications unavailable", applogger.Error(err))
	}
	if name == "" {
		name = "Industry " + strconv.Itoa(industryID)
	}
	return u.benchmark(ctx, &industryID, name, minCompanies)
}

// ByName benchmarks the industry whose ICB names contain the given name.
func (u *IndustryBenchmarker) ByName(ctx context.Context, industryName string, minCompanies int) (models.IndustryBenchmark, error) {
	return u.benchmark(ctx, nil, industryName, minCompanies)
}

// ForCompany resolves a ticker's industry from its company overview and
// benchmarks that industry.
func (u *IndustryBenchmarker) ForCompany(ctx context.Context, ticker string, minCompanies int) (models.IndustryBenchmark, error) {
	ticker = strings.ToUpper(ticker)
	profile, err := u.market.CompanyProfile(ctx, ticker)
	if err != nil {
		return models.IndustryBenchmark{}, &valuation.DataFetchError{Ticker: ticker, Op: "industry_benchmark", Err: err}
	}
	name := profile.IcbName3
	if name == "" {
		name = profile.IcbName2
	}
	if name == "" {
		return models.IndustryBenchmark{}, &valuation.MissingMarketDataError{Ticker: ticker, Op: "industry_benchmark", Field: "company overview"}
	}

	var industryID *int
	if classes, err := u.market.Industries(ctx); err == nil {
		needle := strings.ToLower(name)
		for _, cl := range classes {
			label := strings.ToLower(cl.Name)
			if strings.Contains(label, needle) || strings.Contains(needle, label) {
				if id, convErr := strconv.Atoi(cl.Code); convErr == nil {
					industryID = &id
					break
				}
			}
		}
	}
	return u.benchmark(ctx, industryID, name, minCompanies)
}

// Classifications returns the ICB code to industry name mapping.
func (u *IndustryBenchmarker) Classifications(ctx context.Context) (map[string]string, error) {
	classes, err := u.market.Industries(ctx)
	if err != nil {
		return nil, &valuation.DataFetchError{Ticker: "ICB", Op: "industry_benchmark", Err: err}
	}
	out := make(map[string]string, len(classes))
	for _, cl := range classes {
		if cl.Code != "" && cl.Name != "" {
			out[cl.Code] = cl.Name
		}
	}
	return out, nil
}

func (u *IndustryBenchmarker) benchmark(ctx context.Context, industryID *int, industryName string, minCompanies int) (models.IndustryBenchmark, error) {
	if minCompanies <= 0 {
		minCompanies = DefaultMinCompanies
	}
	peers := u.resolvePeers(ctx, industryName)
	if len(peers) > maxPeers {
		peers = peers[:maxPeers]
	}
	if len(peers) < minCompanies {
		return models.IndustryBenchmark{}, &valuation.InsufficientDataError{
			Ticker:   industryName,
			Op:       "industry_benchmark",
			Observed: len(peers),
			Required: minCompanies,
		}
	}

	samples, analyzed := u.collectRatios(ctx, peers)
	if err := ctx.Err(); err != nil {
		return models.IndustryBenchmark{}, &valuation.DataFetchError{Ticker: industryName, Op: "industry_benchmark", Err: err}
	}

	benchmarks := make(map[string]models.RatioBenchmark)
	available := make([]string, 0, len(benchmarkRatioFields))
	for _, field := range benchmarkRatioFields {
		values := samples[field]
		if len(values) < minSamplesPerRatio {
			continue
		}
		benchmarks[field] = models.RatioBenchmark{
			Mean:   valuation.Mean(values),
			Median: valuation.Median(values),
			P25:    valuation.Quantile(values, 0.25),
			P75:    valuation.Quantile(values, 0.75),
			Std:    valuation.SampleStd(values),
			Count:  len(values),
		}
		available = append(available, field)
	}

	if u.l != nil {
		u.l.Info("benchmark.computed",
			applogger.String("industry", industryName),
			applogger.Int("peers", len(peers)),
			applogger.Int("analyzed", analyzed),
			applogger.Int("ratios", len(available)))
	}
	name := industryName
	if name == "" {
		name = "Unknown Industry"
	}
	return models.IndustryBenchmark{
		IndustryName:      name,
		IndustryID:        industryID,
		CompanyCount:      len(peers),
		CompaniesAnalyzed: analyzed,
		Benchmarks:        benchmarks,
		RatiosAvailable:   available,
	}, nil
}

// resolvePeers finds the symbols belonging to an industry. The industry
// listing is matched by name against all three ICB levels; when that surface
// is unreachable it degrades to an unclassified symbol sample, then to a
// fixed peer set.
func (u *IndustryBenchmarker) resolvePeers(ctx context.Context, industryName string) []string {
	symbols, err := u.market.SymbolsByIndustry(ctx)
	if err == nil {
		peers := make([]string, 0, maxPeers)
		if industryName != "" {
			needle := strings.ToLower(industryName)
			for _, s := range symbols {
				if containsFold(s.IcbName3, needle) || containsFold(s.IcbName2, needle) || containsFold(s.IcbName4, needle) {
					peers = append(peers, s.Symbol)
				}
			}
		}
		return peers
	}
	if u.l != nil {
		u.l.Warn("benchmark.symbol_listing unavailable", applogger.Error(err))
	}

	all, allErr := u.market.AllSymbols(ctx)
	if allErr == nil && len(all) > 0 {
		if len(all) > fallbackSymbolCap {
			all = all[:fallbackSymbolCap]
		}
		peers := make([]string, 0, len(all))
		for _, s := range all {
			peers = append(peers, s.Symbol)
		}
		return peers
	}
	return append([]string(nil), defaultPeers...)
}

// collectRatios fetches the latest yearly ratio row for every peer with
// bounded concurrency. Peers whose data is unavailable are skipped; only
// positive ratio values enter the sample.
func (u *IndustryBenchmarker) collectRatios(ctx context.Context, peers []string) (map[string][]float64, int) {
	type peerRatios struct {
		symbol string
		row    models.RatioRow
		err    error
	}
	jobs := make(chan string)
	results := make(chan peerRatios, len(peers))
	var wg sync.WaitGroup

	workers := u.workers
	if workers > len(peers) {
		workers = len(peers)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for symbol := range jobs {
				rows, err := u.market.FinanceRatios(ctx, symbol, domrepo.PeriodYear)
				if err != nil {
					results <- peerRatios{symbol: symbol, err: err}
					continue
				}
				if len(rows) == 0 {
					results <- peerRatios{symbol: symbol, err: errNoRatioRows}
					continue
				}
				results <- peerRatios{symbol: symbol, row: rows[len(rows)-1]}
			}
		}()
	}
	go func() {
		defer close(jobs)
		for _, symbol := range peers {
			select {
			case jobs <- symbol:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() { wg.Wait(); close(results) }()

	samples := make(map[string][]float64, len(benchmarkRatioFields))
	analyzed := 0
	for res := range results {
		if res.err != nil {
			if u.l != nil {
				u.l.Warn("benchmark.peer skipped",
					applogger.String("symbol", res.symbol),
					applogger.Error(res.err))
			}
			continue
		}
		analyzed++
		for _, field := range benchmarkRatioFields {
			if v, ok := res.row.Lookup(field); ok && v > 0 {
				samples[field] = append(samples[field], v)
			}
		}
	}
	return samples, analyzed
}

func containsFold(haystack, loweredNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), loweredNeedle)
}
