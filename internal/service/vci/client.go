package vci

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/gahoccode/richslow/internal/domain/models"
	"github.com/gahoccode/richslow/internal/domain/repository"
	xhttp "github.com/gahoccode/richslow/pkg/http"
	applogger "github.com/gahoccode/richslow/pkg/logger"
	"github.com/gahoccode/richslow/pkg/util"
)

const (
	// DefaultBaseURL is the base URL for the VCI trading API.
	DefaultBaseURL = "https://trading.vietcap.com.vn/api"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default rate limit (requests per second).
	DefaultRateLimit = 10

	// DefaultUserAgent identifies this service to the provider.
	DefaultUserAgent = "richslow/1.0"
)

// Statement rows carry the reporting year under a name that varies with the
// provider's language and flattening settings. First present candidate wins.
var yearFields = []string{"yearReport", "year_report"}

// Balance-sheet positions, snake_case first with the provider's English
// display names as fallback. Presence decides, so a zero borrowing balance
// survives.
var (
	shortTermBorrowingsFields = []string{"short_term_borrowings", "Short-term borrowings (Bn. VND)"}
	longTermBorrowingsFields  = []string{"long_term_borrowings", "Long-term borrowings (Bn. VND)"}
)

// Client is a VCI market-data API client. It implements
// repository.MarketData.
type Client struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	http      *xhttp.Client
	limiter   *rate.Limiter
	l         *applogger.Logger
	metrics   repository.Metrics
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRateLimit sets a custom rate limit. A non-positive value disables
// throttling.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		if requestsPerSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithUserAgent sets the User-Agent header sent to the provider.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets a structured logger.
func WithLogger(l *applogger.Logger) ClientOption {
	return func(c *Client) {
		c.l = l
	}
}

// WithMetrics sets a metrics recorder for provider calls.
func WithMetrics(m repository.Metrics) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a new VCI API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
		limiter:   rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.http = xhttp.NewClient(xhttp.WithTimeout(c.timeout))
	return c
}

// get performs a rate-limited GET against the API and decodes JSON into
// result.
func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("vci rate limiter: %w", err)
	}

	start := time.Now()
	resp, err := c.http.SendRequest(ctx, &xhttp.RequestOptions{
		Method: http.MethodGet,
		URL:    c.baseURL + path,
		Headers: map[string]string{
			"User-Agent": c.userAgent,
			"Accept":     "application/json",
		},
		QueryParams: params,
	})
	if err != nil {
		if c.metrics != nil {
			c.metrics.RecordProviderRequest(path, "error")
		}
		return fmt.Errorf("vci get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if c.metrics != nil {
		c.metrics.RecordProviderRequest(path, strconv.Itoa(resp.StatusCode))
		c.metrics.RecordProviderLatency(path, time.Since(start).Seconds())
	}
	if c.l != nil {
		c.l.Debug("vci.request",
			applogger.String("path", path),
			applogger.Int("status", resp.StatusCode),
			applogger.Duration("duration", time.Since(start)))
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("vci decode %s: %w", path, err)
	}
	return nil
}

// PriceHistory retrieves daily bars for a symbol. Both bounds are inclusive
// by trading date; bar timestamps come back truncated to midnight UTC.
func (c *Client) PriceHistory(ctx context.Context, symbol string, from, to time.Time, iv repository.Interval) ([]models.PricePoint, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("resolution", string(iv))
	params.Set("from", strconv.FormatInt(from.Unix(), 10))
	params.Set("to", strconv.FormatInt(to.Unix(), 10))

	var series chartSeries
	if err := c.get(ctx, "/chart/history", params, &series); err != nil {
		return nil, err
	}
	if series.ragged() {
		return nil, fmt.Errorf("vci chart %s: ragged bar arrays", symbol)
	}

	points := make([]models.PricePoint, 0, len(series.T))
	for i, ts := range series.T {
		points = append(points, models.PricePoint{
			Time:   util.UnixDate(ts),
			Open:   series.O[i],
			High:   series.H[i],
			Low:    series.L[i],
			Close:  series.C[i],
			Volume: series.V[i],
		})
	}
	return points, nil
}

// FinanceRatios retrieves financial ratio rows for a symbol, sorted
// ascending by reporting year. Column names are provider-controlled, so each
// row keeps its numeric fields as a map.
func (c *Client) FinanceRatios(ctx context.Context, symbol string, period repository.Period) ([]models.RatioRow, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("period", string(period))
	params.Set("lang", "en")

	var raw []map[string]any
	if err := c.get(ctx, "/finance/ratio", params, &raw); err != nil {
		return nil, err
	}

	rows := make([]models.RatioRow, 0, len(raw))
	for _, rec := range raw {
		row := models.RatioRow{
			Year:   int(firstFloatDefault(rec, yearFields)),
			Fields: make(map[string]float64, len(rec)),
		}
		for k, v := range rec {
			if isYearField(k) {
				continue
			}
			if f, ok := toFloat(v); ok {
				row.Fields[k] = f
			}
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })
	return rows, nil
}

// BalanceSheet retrieves balance-sheet rows for a symbol, sorted ascending
// by reporting year.
func (c *Client) BalanceSheet(ctx context.Context, symbol string, period repository.Period) ([]models.BalanceRow, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("period", string(period))
	params.Set("lang", "en")

	var raw []map[string]any
	if err := c.get(ctx, "/finance/balance-sheet", params, &raw); err != nil {
		return nil, err
	}

	rows := make([]models.BalanceRow, 0, len(raw))
	for _, rec := range raw {
		rows = append(rows, models.BalanceRow{
			Year:                int(firstFloatDefault(rec, yearFields)),
			ShortTermBorrowings: firstFloatDefault(rec, shortTermBorrowingsFields),
			LongTermBorrowings:  firstFloatDefault(rec, longTermBorrowingsFields),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })
	return rows, nil
}

// CompanyProfile retrieves the company overview used for industry
// classification lookups.
func (c *Client) CompanyProfile(ctx context.Context, symbol string) (*models.CompanyProfile, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var profile models.CompanyProfile
	if err := c.get(ctx, "/company/overview", params, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Industries retrieves the ICB classification listing.
func (c *Client) Industries(ctx context.Context) ([]models.IndustryClass, error) {
	var industries []models.IndustryClass
	if err := c.get(ctx, "/listing/industries", nil, &industries); err != nil {
		return nil, err
	}
	return industries, nil
}

// SymbolsByIndustry retrieves every listed symbol with its ICB industry
// names.
func (c *Client) SymbolsByIndustry(ctx context.Context) ([]models.IndustrySymbol, error) {
	var symbols []models.IndustrySymbol
	if err := c.get(ctx, "/listing/symbols-by-industries", nil, &symbols); err != nil {
		return nil, err
	}
	return symbols, nil
}

// AllSymbols retrieves the plain listing of every traded symbol.
func (c *Client) AllSymbols(ctx context.Context) ([]models.ListedSymbol, error) {
	var symbols []models.ListedSymbol
	if err := c.get(ctx, "/listing/all-symbols", nil, &symbols); err != nil {
		return nil, err
	}
	return symbols, nil
}

func isYearField(name string) bool {
	for _, k := range yearFields {
		if name == k {
			return true
		}
	}
	return false
}

// firstFloatDefault returns the first candidate field that is present and
// numeric, or 0.
func firstFloatDefault(rec map[string]any, candidates []string) float64 {
	for _, name := range candidates {
		if v, ok := rec[name]; ok {
			if f, ok := toFloat(v); ok {
				return f
			}
		}
	}
	return 0
}

var _ repository.MarketData = (*Client)(nil)
