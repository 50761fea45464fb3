package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gahoccode/richslow/internal/domain/models"
	domrepo "github.com/gahoccode/richslow/internal/domain/repository"
	"github.com/gahoccode/richslow/internal/services/valuation"
	"github.com/gahoccode/richslow/internal/usecase"
)

// stubMarket fails every provider call. Handler tests only need the error
// paths and the endpoints that never touch the provider.
type stubMarket struct{}

var _ domrepo.MarketData = stubMarket{}

var errStubDown = errors.New("provider down")

func (stubMarket) PriceHistory(context.Context, string, time.Time, time.Time, domrepo.Interval) ([]models.PricePoint, error) {
	return nil, errStubDown
}

func (stubMarket) FinanceRatios(context.Context, string, domrepo.Period) ([]models.RatioRow, error) {
	return nil, errStubDown
}

func (stubMarket) BalanceSheet(context.Context, string, domrepo.Period) ([]models.BalanceRow, error) {
	return nil, errStubDown
}

func (stubMarket) CompanyProfile(context.Context, string) (*models.CompanyProfile, error) {
	return nil, errStubDown
}

func (stubMarket) Industries(context.Context) ([]models.IndustryClass, error) {
	return nil, errStubDown
}

func (stubMarket) SymbolsByIndustry(context.Context) ([]models.IndustrySymbol, error) {
	return nil, errStubDown
}

func (stubMarket) AllSymbols(context.Context) ([]models.ListedSymbol, error) {
	return nil, errStubDown
}

func newTestRouter() *Router {
	assum := valuation.DefaultAssumptions()
	svc := valuation.New(stubMarket{}, assum, 0)
	analyzer := usecase.NewValuationAnalyzer(stubMarket{}, svc, svc, assum, 0)
	prices := usecase.NewPriceHistory(stubMarket{})
	bench := usecase.NewIndustryBenchmarker(stubMarket{}, 2)
	return NewRouter(
		NewValuationEchoHandler(analyzer),
		NewPricesEchoHandler(prices),
		NewBenchmarkEchoHandler(bench),
	)
}

func doRequest(t *testing.T, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	e := echo.New()
	newTestRouter().RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	body := map[string]interface{}{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not a JSON object: %v (body %q)", err, rec.Body.String())
	}
	return rec, body
}

func TestHealthEndpoint(t *testing.T) {
	rec, body := doRequest(t, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body["status"] != "ok" {
		t.Fatalf("body = %v, want status ok", body)
	}
}

func TestMarketAssumptionsEndpoint(t *testing.T) {
	rec, body := doRequest(t, "/api/market-assumptions")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("envelope has no data object: %v", body)
	}
	if data["market"] != "Vietnam" || data["currency"] != "VND" {
		t.Fatalf("market/currency = %v/%v", data["market"], data["currency"])
	}
}

func TestBetaRejectsMissingDates(t *testing.T) {
	rec, body := doRequest(t, "/api/beta/FPT")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body["status"] != float64(http.StatusBadRequest) {
		t.Fatalf("envelope status = %v, want 400", body["status"])
	}
}

func TestBetaMapsFetchFailure(t *testing.T) {
	rec, body := doRequest(t, "/api/beta/FPT?start_date=2024-01-01&end_date=2024-06-30")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	raw, _ := json.Marshal(body["data"])
	if !strings.Contains(string(raw), "ERR_DATA_FETCH") {
		t.Fatalf("data should carry ERR_DATA_FETCH: %s", raw)
	}
}

func TestValidateNeverFails(t *testing.T) {
	rec, body := doRequest(t, "/api/validate/FPT?start_date=2024-01-01&end_date=2024-06-30")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even when the provider is down", rec.Code)
	}
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("envelope has no data object: %v", body)
	}
	avail, ok := data["validation"].(map[string]interface{})
	if !ok {
		t.Fatalf("report has no validation object: %v", data)
	}
	if up, _ := avail["data_available"].(bool); up {
		t.Fatal("data_available should be false with the provider down")
	}
}

func TestBenchmarkRateLimit(t *testing.T) {
	e := echo.New()
	newTestRouter().RegisterRoutes(e)

	codes := make([]int, 0, 3)
	var lastBody string
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/benchmark?industry_name=Banks", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
		lastBody = rec.Body.String()
	}
	// Burst of 2, so the third request in the same instant is rejected.
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third request = %d, want 429 (codes %v)", codes[2], codes)
	}
	if !strings.Contains(lastBody, "ERR_RATE_LIMITED") {
		t.Fatalf("throttled response should carry ERR_RATE_LIMITED: %s", lastBody)
	}
	for i := 0; i < 2; i++ {
		if codes[i] == http.StatusTooManyRequests {
			t.Fatalf("request %d should not be throttled (codes %v)", i+1, codes)
		}
	}
}

func TestToAppErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{
			name:   "insufficient data",
			err:    &valuation.InsufficientDataError{Ticker: "FPT", Op: "beta", Observed: 3, Required: 30},
			code:   "ERR_INSUFFICIENT_DATA",
			status: http.StatusBadRequest,
		},
		{
			name:   "degenerate capital structure",
			err:    &valuation.DegenerateCapitalStructureError{Ticker: "FPT", Op: "wacc"},
			code:   "ERR_DEGENERATE_CAPITAL_STRUCTURE",
			status: http.StatusBadRequest,
		},
		{
			name:   "missing market data",
			err:    &valuation.MissingMarketDataError{Ticker: "FPT", Op: "wacc", Field: "balance sheet"},
			code:   "ERR_MISSING_MARKET_DATA",
			status: http.StatusNotFound,
		},
		{
			name:   "fetch failure",
			err:    &valuation.DataFetchError{Ticker: "FPT", Op: "beta", Err: errStubDown},
			code:   "ERR_DATA_FETCH",
			status: http.StatusInternalServerError,
		},
		{
			name:   "invalid date window",
			err:    usecase.ErrInvalidDateWindow,
			code:   "ERR_BAD_REQUEST",
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown",
			err:    errors.New("boom"),
			code:   "ERR_INTERNAL",
			status: http.StatusInternalServerError,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := toAppError(tc.err)
			if appErr.Code != tc.code {
				t.Fatalf("code = %s, want %s", appErr.Code, tc.code)
			}
			if appErr.Status != tc.status {
				t.Fatalf("status = %d, want %d", appErr.Status, tc.status)
			}
		})
	}
}

func TestInsufficientDataParams(t *testing.T) {
	err := &valuation.InsufficientDataError{Ticker: "FPT", Op: "beta", Observed: 12, Required: 30}
	appErr := toAppError(err)
	if appErr.Params["observed"] != 12 || appErr.Params["required"] != 30 {
		t.Fatalf("params = %v, want observed 12 required 30", appErr.Params)
	}
}
