package dto

// InvestmentDataResponse represents the JSON structure returned by the
// GET /api/investment-data endpoint.
//
// Fields match the API contract and may differ from internal domain models.
// This ensures loose coupling between the API surface and business logic.
type InvestmentDataResponse struct {
	Summary   SummaryResponse `json:"summary"`
	ChartData []ChartPoint    `json:"chartData"` // ascending chronological order
	Profile   ProfileResponse `json:"profile"`
	Metrics   MetricsResponse `json:"metrics"`
}

// SummaryResponse is the investment performance block.
type SummaryResponse struct {
	InitialInvestment  float64 `json:"initialInvestment" example:"1000"`
	CurrentValue       float64 `json:"currentValue" example:"1200"`
	TotalReturnDollars float64 `json:"totalReturnDollars" example:"200"`
	TotalReturnPercent float64 `json:"totalReturnPercent" example:"20"`
	Ticker             string  `json:"ticker" example:"AAPL"`
	StartDate          string  `json:"startDate" example:"2024-01-02"`
	SharesOwned        float64 `json:"sharesOwned" example:"5.420054"`
	RequestTimestamp   string  `json:"requestTimestamp" example:"2025-09-01T12:00:00Z"`
}

// ChartPoint is one per-day value entry of the chart series.
type ChartPoint struct {
	Date  string  `json:"date" example:"2024-01-02"`
	Value float64 `json:"value" example:"1000"`
	Price float64 `json:"price" example:"184.29"`
}

// ProfileResponse is the company profile block, with "N/A" defaults
// already applied when the upstream profile was unavailable.
type ProfileResponse struct {
	Name     string `json:"name" example:"Apple Inc."`
	Sector   string `json:"sector" example:"Technology"`
	Industry string `json:"industry" example:"Consumer Electronics"`
	Summary  string `json:"summary" example:"Apple Inc. designs, manufactures..."`
	Location string `json:"location" example:"Cupertino, United States"`
	Exchange string `json:"exchange" example:"NasdaqGS"`
}

// MetricsResponse groups valuation metrics. Nullable values marshal as
// JSON null rather than being omitted.
type MetricsResponse struct {
	PreviousClose MetricValue  `json:"previousClose"`
	MarketCap     MetricValue  `json:"marketCap"`
	TotalRevenue  RevenueValue `json:"totalRevenue"`
	Beta          BetaValue    `json:"beta"`
}

// MetricValue is a figure with the calendar date it refers to.
type MetricValue struct {
	Value    *float64 `json:"value" example:"189.95"`
	AsOfDate *string  `json:"asOfDate" example:"2025-08-29"`
}

// RevenueValue is the revenue figure with its provenance label
// ("Annual" or "TTM").
type RevenueValue struct {
	Value    *float64 `json:"value" example:"383285000000"`
	AsOfDate *string  `json:"asOfDate" example:"2023-12-31"`
	Label    string   `json:"label" example:"Annual"`
}

// BetaValue wraps the beta figure.
type BetaValue struct {
	Value *float64 `json:"value" example:"1.24"`
}
