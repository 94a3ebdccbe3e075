package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mslopes/investsnap/internal/domain/models"
)

// assemble is a pure function combining the fetched data into the
// response snapshot. res.history is non-empty and res.quote and
// res.stats are non-nil by the time this runs; only res.profile may be
// missing.
func assemble(ticker, startDate string, amount float64, res *fetchResult) *models.Snapshot {
	first := res.history[0]
	last := res.history[len(res.history)-1]
	lastTradingDay := normalizeDate(last.Date)

	// Hypothetical position: buy at the first adjusted close, value at
	// the live market price.
	shares := amount / first.AdjClose
	currentValue := shares * res.quote.Price

	chartData := make([]models.ChartPoint, 0, len(res.history))
	for _, p := range res.history {
		chartData = append(chartData, models.ChartPoint{
			Date:  normalizeDate(p.Date),
			Value: round2(shares * p.AdjClose),
			Price: round2(p.AdjClose),
		})
	}

	summary := models.PerformanceSummary{
		InitialInvestment:  round2(amount),
		CurrentValue:       round2(currentValue),
		TotalReturnDollars: round2(currentValue - amount),
		TotalReturnPercent: round2((currentValue - amount) / amount * 100),
		Ticker:             strings.ToUpper(ticker),
		StartDate:          startDate,
		SharesOwned:        round6(shares),
		RequestTimestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	revenue, revenueDate, revenueLabel := resolveRevenue(res.stats, lastTradingDay)

	metrics := models.Metrics{
		PreviousClose: models.Metric{
			Value:    ptr(round2(res.quote.PreviousClose)),
			AsOfDate: &lastTradingDay,
		},
		MarketCap: models.Metric{
			Value:    resolveMarketCap(res.quote, res.stats),
			AsOfDate: &lastTradingDay,
		},
		TotalRevenue: models.RevenueMetric{
			Value:    revenue,
			AsOfDate: revenueDate,
			Label:    revenueLabel,
		},
		// Beta is passed through unmodified.
		Beta: models.BetaMetric{Value: res.stats.Beta},
	}

	return &models.Snapshot{
		Summary:   summary,
		ChartData: chartData,
		Profile:   buildProfile(res.quote, res.profile),
		Metrics:   metrics,
	}
}

// resolveRevenue applies the revenue fallback policy, in priority order:
//
//  1. Most recent annual income statement, when it has both a revenue
//     figure and an end date. Label "Annual", dated by the statement.
//  2. Trailing-twelve-month revenue, dated as of the last trading day.
//  3. Nothing: nil value and date, label stays "Annual".
func resolveRevenue(stats *models.FinancialStats, lastTradingDay string) (*float64, *string, string) {
	if stats.AnnualRevenue != nil && stats.AnnualRevenueEndDate != nil {
		d := normalizeDate(*stats.AnnualRevenueEndDate)
		return stats.AnnualRevenue, &d, "Annual"
	}
	if stats.TTMRevenue != nil {
		return stats.TTMRevenue, &lastTradingDay, "TTM"
	}
	return nil, nil, "Annual"
}

// resolveMarketCap prefers previous close times shares outstanding,
// which keeps the figure consistent with the previous-close price
// reported elsewhere in the response. The provider's raw market cap is
// the fallback when either factor is unavailable.
func resolveMarketCap(q *models.Quote, stats *models.FinancialStats) *float64 {
	if q.PreviousClose != 0 && stats.SharesOutstanding != nil {
		v := round2(q.PreviousClose * *stats.SharesOutstanding)
		return &v
	}
	return q.MarketCap
}

// buildProfile merges quote identity fields with the optional company
// profile, applying named defaults for anything missing.
func buildProfile(q *models.Quote, p *models.CompanyProfile) models.ProfileInfo {
	info := models.ProfileInfo{
		Name:     fallback(q.Name, "N/A"),
		Sector:   "N/A",
		Industry: "N/A",
		Summary:  "No summary available.",
		Location: "N/A",
		Exchange: fallback(q.Exchange, "N/A"),
	}
	if p == nil {
		return info
	}
	info.Sector = fallback(p.Sector, "N/A")
	info.Industry = fallback(p.Industry, "N/A")
	info.Summary = fallback(p.Summary, "No summary available.")
	if p.City != "" && p.Country != "" {
		info.Location = p.City + ", " + p.Country
	} else if p.Country != "" {
		info.Location = p.Country
	}
	return info
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// round2 rounds monetary and ratio values to cents.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// round6 rounds fractional share counts.
func round6(v float64) float64 {
	return decimal.NewFromFloat(v).Round(6).InexactFloat64()
}

func ptr(v float64) *float64 { return &v }
