package models

import "errors"

// Sentinel errors distinguishing the two not-found conditions from a
// total upstream failure. Handlers match them with errors.Is.
var (
	// ErrNoHistoricalData is returned when the provider answers the
	// historical query but the series is empty for the requested range.
	ErrNoHistoricalData = errors.New("no historical data found")

	// ErrTickerNotFound is returned when the provider reports the ticker
	// symbol itself as unknown.
	ErrTickerNotFound = errors.New("invalid ticker symbol")
)
