package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mslopes/investsnap/internal/domain/dto"
	"github.com/mslopes/investsnap/internal/domain/models"
	"github.com/mslopes/investsnap/internal/logger"
	"github.com/mslopes/investsnap/internal/service"
)

const missingParamsMessage = "Missing required query parameters: ticker, startDate, amount"

// Handler provides HTTP handlers for the investment snapshot endpoint.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Interact with the snapshot service
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.SnapshotService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.SnapshotService) *Handler {
	return &Handler{svc: svc}
}

// GetInvestmentData handles GET /api/investment-data requests.
//
// GetInvestmentData godoc
// @Summary      Investment snapshot for a ticker
// @Description  Aggregates historical prices, live quote, company profile and financial statistics into one payload
// @Tags         investment
// @Produce      json
// @Param        ticker     query     string  true  "Stock ticker" example(AAPL)
// @Param        startDate  query     string  true  "Start date in YYYY-MM-DD" example(2024-01-02)
// @Param        amount     query     string  true  "Initial investment amount" example(1000)
// @Success      200        {object}  dto.InvestmentDataResponse  "Success"
// @Failure      400        {object}  dto.ErrorResponse           "Bad Request"
// @Failure      404        {object}  dto.ErrorResponse           "Not Found"
// @Failure      500        {object}  dto.ErrorResponse           "Internal Error"
// @Router       /api/investment-data [get]
func (h *Handler) GetInvestmentData(c *gin.Context) {
	ticker := c.Query("ticker")
	startDate := c.Query("startDate")
	amountParam := c.Query("amount")

	// Presence is the only precondition checked before upstream dispatch.
	if ticker == "" || startDate == "" || amountParam == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(missingParamsMessage, nil))
		return
	}

	// A non-positive amount would produce division-by-zero or
	// negative-share semantics downstream, so it is rejected here.
	amount, err := strconv.ParseFloat(amountParam, 64)
	if err != nil || amount <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid amount: must be a positive number", nil))
		return
	}

	snap, err := h.svc.GetSnapshot(c.Request.Context(), ticker, startDate, amount)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNoHistoricalData):
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(
				fmt.Sprintf("No historical data found for ticker: %s", ticker), nil))
		case errors.Is(err, models.ErrTickerNotFound):
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(
				fmt.Sprintf("Invalid ticker symbol: %s", ticker), nil))
		default:
			// Cause stays server-side; the client gets the generic message.
			logger.L().Error().Str("ticker", ticker).Err(err).Msg("snapshot build failed")
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("An internal server error occurred.", nil))
		}
		return
	}

	c.JSON(http.StatusOK, toResponse(snap))
}

// toResponse maps the internal snapshot onto the API contract DTO.
func toResponse(s *models.Snapshot) dto.InvestmentDataResponse {
	chartData := make([]dto.ChartPoint, 0, len(s.ChartData))
	for _, p := range s.ChartData {
		chartData = append(chartData, dto.ChartPoint{Date: p.Date, Value: p.Value, Price: p.Price})
	}

	return dto.InvestmentDataResponse{
		Summary: dto.SummaryResponse{
			InitialInvestment:  s.Summary.InitialInvestment,
			CurrentValue:       s.Summary.CurrentValue,
			TotalReturnDollars: s.Summary.TotalReturnDollars,
			TotalReturnPercent: s.Summary.TotalReturnPercent,
			Ticker:             s.Summary.Ticker,
			StartDate:          s.Summary.StartDate,
			SharesOwned:        s.Summary.SharesOwned,
			RequestTimestamp:   s.Summary.RequestTimestamp,
		},
		ChartData: chartData,
		Profile: dto.ProfileResponse{
			Name:     s.Profile.Name,
			Sector:   s.Profile.Sector,
			Industry: s.Profile.Industry,
			Summary:  s.Profile.Summary,
			Location: s.Profile.Location,
			Exchange: s.Profile.Exchange,
		},
		Metrics: dto.MetricsResponse{
			PreviousClose: dto.MetricValue{Value: s.Metrics.PreviousClose.Value, AsOfDate: s.Metrics.PreviousClose.AsOfDate},
			MarketCap:     dto.MetricValue{Value: s.Metrics.MarketCap.Value, AsOfDate: s.Metrics.MarketCap.AsOfDate},
			TotalRevenue: dto.RevenueValue{
				Value:    s.Metrics.TotalRevenue.Value,
				AsOfDate: s.Metrics.TotalRevenue.AsOfDate,
				Label:    s.Metrics.TotalRevenue.Label,
			},
			Beta: dto.BetaValue{Value: s.Metrics.Beta.Value},
		},
	}
}
