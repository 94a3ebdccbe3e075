//go:build integration
// +build integration

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mslopes/investsnap/config"
	"github.com/mslopes/investsnap/internal/app"
)

// TestInvestmentData_LiveYahoo exercises the full stack against the real
// Yahoo Finance API. Run with: go test -tags=integration ./internal/api/...
func TestInvestmentData_LiveYahoo(t *testing.T) {
	config.LoadConfig()

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		t.Fatalf("init app: %v", err)
	}
	defer cleanup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/investment-data?ticker=AAPL&startDate=2024-01-02&amount=1000", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var out struct {
		Summary struct {
			Ticker      string  `json:"ticker"`
			SharesOwned float64 `json:"sharesOwned"`
		} `json:"summary"`
		ChartData []struct {
			Date string `json:"date"`
		} `json:"chartData"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Summary.Ticker != "AAPL" || out.Summary.SharesOwned <= 0 {
		t.Fatalf("unexpected summary: %+v", out.Summary)
	}
	if len(out.ChartData) == 0 {
		t.Fatalf("empty chartData")
	}
	for i := 1; i < len(out.ChartData); i++ {
		if out.ChartData[i].Date < out.ChartData[i-1].Date {
			t.Fatalf("chartData not ascending at %d", i)
		}
	}
}
