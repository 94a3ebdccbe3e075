package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"

	"github.com/mslopes/investsnap/config"
	"github.com/mslopes/investsnap/internal/domain/models"
)

// MarketDataProvider abstracts the upstream financial-data service.
// The snapshot service depends on this interface; Client is the Yahoo
// Finance implementation.
type MarketDataProvider interface {
	// Historical returns the daily adjusted-close series for the ticker
	// from startDate (YYYY-MM-DD) to the latest available trading day,
	// in ascending chronological order.
	Historical(ctx context.Context, ticker, startDate string) ([]models.HistoricalPoint, error)

	// Quote returns the live quote for the ticker.
	Quote(ctx context.Context, ticker string) (*models.Quote, error)

	// Profile returns descriptive company data for the ticker.
	Profile(ctx context.Context, ticker string) (*models.CompanyProfile, error)

	// Statistics returns summary fundamentals for the ticker. Missing
	// upstream modules yield nil fields, not an error.
	Statistics(ctx context.Context, ticker string) (*models.FinancialStats, error)
}

// Client queries Yahoo Finance. Quote and historical data go through
// the finance-go bindings; profile and fundamentals use the
// quoteSummary JSON endpoint directly, which finance-go does not cover.
type Client struct {
	http *resty.Client
}

var _ MarketDataProvider = (*Client)(nil)

// NewClient builds a Client from the Yahoo section of the application
// configuration.
//
// No request timeout is set on the HTTP client: the endpoint's latency
// is bounded only by the upstream provider.
func NewClient(cfg config.YahooConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.QuoteSummaryURL).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient}
}

// Historical fetches daily bars since startDate. The date is parsed
// here, not validated at the API boundary; a malformed date therefore
// surfaces as an upstream-fetch failure.
func (c *Client) Historical(ctx context.Context, ticker, startDate string) ([]models.HistoricalPoint, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("parse start date %q: %w", startDate, err)
	}
	end := time.Now().UTC()

	params := &chart.Params{
		Symbol:   ticker,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)
	var points []models.HistoricalPoint
	for iter.Next() {
		bar := iter.Bar()
		points = append(points, models.HistoricalPoint{
			Date:     time.Unix(int64(bar.Timestamp), 0).UTC(),
			AdjClose: bar.AdjClose.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("historical prices for %s: %w", ticker, err)
	}

	return points, nil
}

// Quote fetches the live quote for the ticker.
func (c *Client) Quote(ctx context.Context, ticker string) (*models.Quote, error) {
	q, err := equity.Get(ticker)
	if err != nil {
		return nil, fmt.Errorf("quote for %s: %w", ticker, err)
	}
	if q == nil {
		return nil, fmt.Errorf("quote for %s: %w", ticker, models.ErrTickerNotFound)
	}

	out := &models.Quote{
		Price:         q.RegularMarketPrice,
		PreviousClose: q.RegularMarketPreviousClose,
		Name:          q.ShortName,
		Exchange:      q.FullExchangeName,
	}
	if q.MarketCap > 0 {
		mc := float64(q.MarketCap)
		out.MarketCap = &mc
	}
	return out, nil
}

// Profile fetches the assetProfile quoteSummary module.
func (c *Client) Profile(ctx context.Context, ticker string) (*models.CompanyProfile, error) {
	res, err := c.quoteSummary(ctx, ticker, "assetProfile")
	if err != nil {
		return nil, err
	}
	ap := res.AssetProfile
	if ap == nil {
		return nil, fmt.Errorf("asset profile for %s: module missing in response", ticker)
	}
	return &models.CompanyProfile{
		Sector:   ap.Sector,
		Industry: ap.Industry,
		Summary:  ap.LongBusinessSummary,
		City:     ap.City,
		Country:  ap.Country,
	}, nil
}

// Statistics fetches the fundamentals modules. Beta is taken from
// defaultKeyStatistics, falling back to summaryDetail.
func (c *Client) Statistics(ctx context.Context, ticker string) (*models.FinancialStats, error) {
	res, err := c.quoteSummary(ctx, ticker,
		"defaultKeyStatistics,incomeStatementHistory,summaryDetail,financialData")
	if err != nil {
		return nil, err
	}

	stats := &models.FinancialStats{}
	if ks := res.DefaultKeyStatistics; ks != nil {
		stats.Beta = ks.Beta.Raw
		stats.SharesOutstanding = ks.SharesOutstanding.Raw
	}
	if stats.Beta == nil && res.SummaryDetail != nil {
		stats.Beta = res.SummaryDetail.Beta.Raw
	}
	if ih := res.IncomeStatementHistory; ih != nil && len(ih.Statements) > 0 {
		latest := ih.Statements[0]
		stats.AnnualRevenue = latest.TotalRevenue.Raw
		if latest.EndDate.Raw != nil {
			end := time.Unix(*latest.EndDate.Raw, 0).UTC()
			stats.AnnualRevenueEndDate = &end
		}
	}
	if fd := res.FinancialData; fd != nil {
		stats.TTMRevenue = fd.TotalRevenue.Raw
	}
	return stats, nil
}

// Ping checks upstream reachability for the readiness probe. Only
// transport failures count: any HTTP status means the host answered.
func (c *Client) Ping() error {
	_, err := c.http.R().Head("/")
	return err
}

// quoteSummary performs one quoteSummary request and unwraps the
// response envelope. A provider-reported "Not Found" is mapped to
// models.ErrTickerNotFound.
func (c *Client) quoteSummary(ctx context.Context, ticker, modules string) (*quoteSummaryResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("symbol", ticker).
		SetQueryParam("modules", modules).
		Get("/{symbol}")
	if err != nil {
		return nil, fmt.Errorf("quoteSummary for %s: %w", ticker, err)
	}

	var env quoteSummaryEnvelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("quoteSummary for %s: decode response: %w", ticker, err)
	}

	if e := env.QuoteSummary.Error; e != nil {
		if strings.EqualFold(e.Code, "Not Found") {
			return nil, fmt.Errorf("quoteSummary for %s: %s: %w", ticker, e.Description, models.ErrTickerNotFound)
		}
		return nil, fmt.Errorf("quoteSummary for %s: %s: %s", ticker, e.Code, e.Description)
	}
	if len(env.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("quoteSummary for %s: empty result", ticker)
	}
	return &env.QuoteSummary.Result[0], nil
}
