package models

// Snapshot is the assembled result of one investment-data request.
// It is built once per request and immutable after construction.
//
// swagger:model Snapshot
type Snapshot struct {
	Summary   PerformanceSummary
	ChartData []ChartPoint
	Profile   ProfileInfo
	Metrics   Metrics
}

// PerformanceSummary describes the hypothetical investment outcome:
// what the given amount invested on the start date would be worth at
// the current market price.
type PerformanceSummary struct {
	InitialInvestment  float64
	CurrentValue       float64
	TotalReturnDollars float64
	TotalReturnPercent float64
	Ticker             string // uppercased echo of the requested ticker
	StartDate          string // raw echo of the requested start date
	SharesOwned        float64
	RequestTimestamp   string // RFC3339, UTC
}

// ChartPoint is one entry of the per-day value series. Value is the
// position value on that day (shares owned times adjusted close).
type ChartPoint struct {
	Date  string
	Value float64
	Price float64
}

// ProfileInfo is the company profile block with fallback defaults
// already applied ("N/A" / "No summary available." when the upstream
// profile was unavailable).
type ProfileInfo struct {
	Name     string
	Sector   string
	Industry string
	Summary  string
	Location string
	Exchange string
}

// Metrics groups the valuation figures of the response.
type Metrics struct {
	PreviousClose Metric
	MarketCap     Metric
	TotalRevenue  RevenueMetric
	Beta          BetaMetric
}

// Metric is a value with the calendar date it refers to. Value is nil
// when no figure could be resolved.
type Metric struct {
	Value    *float64
	AsOfDate *string
}

// RevenueMetric carries the resolved revenue figure together with its
// provenance label: "Annual" when taken from the latest annual income
// statement, "TTM" when the trailing-twelve-month fallback was used.
type RevenueMetric struct {
	Value    *float64
	AsOfDate *string
	Label    string
}

// BetaMetric is the volatility measure, passed through unmodified.
type BetaMetric struct {
	Value *float64
}
