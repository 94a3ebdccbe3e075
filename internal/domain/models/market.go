package models

import "time"

// HistoricalPoint is one daily bar from the upstream historical series.
// AdjClose is the split/dividend adjusted closing price and is the basis
// for all share-count math downstream.
type HistoricalPoint struct {
	Date     time.Time
	AdjClose float64
}

// Quote is a point-in-time snapshot of the live market state for a ticker.
//
// Fields:
//   - Price: current regular-market price.
//   - PreviousClose: prior session's closing price.
//   - MarketCap: market capitalization as reported by the provider,
//     nil when the provider omits it.
//   - Name: short company name as reported alongside the quote.
//   - Exchange: full exchange name (e.g. "NasdaqGS").
type Quote struct {
	Price         float64
	PreviousClose float64
	MarketCap     *float64
	Name          string
	Exchange      string
}

// CompanyProfile holds descriptive company data. The whole profile is
// optional (the fetch may fail without failing the request) and each
// field may be empty independently.
type CompanyProfile struct {
	Sector   string
	Industry string
	Summary  string
	City     string
	Country  string
}

// FinancialStats holds summary fundamentals for a ticker. Every field is
// independently nullable: the upstream modules that produce them may be
// missing for ETFs, indices and thinly covered symbols.
type FinancialStats struct {
	// AnnualRevenue is total revenue from the most recent annual income
	// statement, with the statement's end date. Both must be present for
	// the annual figure to be usable.
	AnnualRevenue        *float64
	AnnualRevenueEndDate *time.Time

	// TTMRevenue is the trailing-twelve-month revenue fallback.
	TTMRevenue *float64

	Beta              *float64
	SharesOutstanding *float64
}
