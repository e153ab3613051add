package service

import (
	"context"
	"errors"

	"github.com/stockpulse/stockpulse/internal/analytics"
	"github.com/stockpulse/stockpulse/internal/model"
	"github.com/stockpulse/stockpulse/internal/timeline"
)

var ErrTickerRequired = errors.New("ticker is required")

// Forecaster is the slice of the analytics client the market service needs.
type Forecaster interface {
	Forecast(ctx context.Context, req analytics.ForecastRequest) (*analytics.ForecastResponse, error)
}

// ForecastResult is the chart-ready forecast for one ticker. Data carries
// the reconciled series rather than the upstream's tagged points.
type ForecastResult struct {
	Name        string                `json:"name"`
	Data        []model.ChartPoint    `json:"data"`
	CurPrice    float64               `json:"curprice"`
	StockPrices []model.StockSnapshot `json:"stock_prices"`
}

type MarketService struct {
	forecaster Forecaster
}

func NewMarketService(forecaster Forecaster) *MarketService {
	return &MarketService{forecaster: forecaster}
}

// Forecast fetches the merged price series and splits it into the two chart
// lines. Upstream failures pass through untouched; no partial chart is built
// from a failed response.
func (s *MarketService) Forecast(ctx context.Context, req analytics.ForecastRequest) (*ForecastResult, error) {
	if req.Ticker == "" {
		return nil, ErrTickerRequired
	}

	resp, err := s.forecaster.Forecast(ctx, req)
	if err != nil {
		return nil, err
	}

	return &ForecastResult{
		Name:        resp.Name,
		Data:        timeline.Reconcile(resp.Data),
		CurPrice:    resp.CurPrice,
		StockPrices: resp.StockPrices,
	}, nil
}
