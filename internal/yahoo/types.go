package yahoo

// Wire types for the Yahoo quoteSummary endpoint. Numeric fields arrive
// as {raw, fmt} objects with independently missing members, so every
// raw value is a pointer.

type rawValue struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt"`
}

// rawDate carries a date as epoch seconds in Raw.
type rawDate struct {
	Raw *int64 `json:"raw"`
	Fmt string `json:"fmt"`
}

type quoteSummaryEnvelope struct {
	QuoteSummary struct {
		Result []quoteSummaryResult `json:"result"`
		Error  *apiError            `json:"error"`
	} `json:"quoteSummary"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type quoteSummaryResult struct {
	AssetProfile           *assetProfile           `json:"assetProfile"`
	DefaultKeyStatistics   *defaultKeyStatistics   `json:"defaultKeyStatistics"`
	IncomeStatementHistory *incomeStatementHistory `json:"incomeStatementHistory"`
	SummaryDetail          *summaryDetail          `json:"summaryDetail"`
	FinancialData          *financialData          `json:"financialData"`
}

type assetProfile struct {
	Sector              string `json:"sector"`
	Industry            string `json:"industry"`
	LongBusinessSummary string `json:"longBusinessSummary"`
	City                string `json:"city"`
	Country             string `json:"country"`
}

type defaultKeyStatistics struct {
	Beta              rawValue `json:"beta"`
	SharesOutstanding rawValue `json:"sharesOutstanding"`
}

// incomeStatementHistory nests a list under a key of the same name,
// most recent statement first.
type incomeStatementHistory struct {
	Statements []incomeStatement `json:"incomeStatementHistory"`
}

type incomeStatement struct {
	EndDate      rawDate  `json:"endDate"`
	TotalRevenue rawValue `json:"totalRevenue"`
}

type summaryDetail struct {
	Beta          rawValue `json:"beta"`
	PreviousClose rawValue `json:"previousClose"`
	MarketCap     rawValue `json:"marketCap"`
}

type financialData struct {
	TotalRevenue rawValue `json:"totalRevenue"`
}
