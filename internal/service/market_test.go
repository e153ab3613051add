package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stockpulse/stockpulse/internal/analytics"
	"github.com/stockpulse/stockpulse/internal/model"
)

type stubForecaster struct {
	resp *analytics.ForecastResponse
	err  error
}

func (s *stubForecaster) Forecast(ctx context.Context, req analytics.ForecastRequest) (*analytics.ForecastResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func TestForecastReconcilesSeries(t *testing.T) {
	svc := NewMarketService(&stubForecaster{resp: &analytics.ForecastResponse{
		Name:     "Infosys",
		CurPrice: 1501.25,
		Data: []model.PricePoint{
			{Date: "2024-01-01", Price: 100.5, Type: model.PriceTypeHistorical},
			{Date: "2024-01-02", Price: 102.1, Type: model.PriceTypePrediction},
		},
	}})

	result, err := svc.Forecast(context.Background(), analytics.ForecastRequest{Ticker: "INFY.NS"})
	if err != nil {
		t.Fatalf("Forecast() error = %v", err)
	}
	if len(result.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(result.Data))
	}
	if result.Data[0].HistoricalPrice == nil || *result.Data[0].HistoricalPrice != 100.5 {
		t.Errorf("Data[0].HistoricalPrice = %v, want 100.5", result.Data[0].HistoricalPrice)
	}
	if result.Data[0].PredictedPrice != nil {
		t.Errorf("Data[0].PredictedPrice = %v, want nil", *result.Data[0].PredictedPrice)
	}
	if result.Data[1].PredictedPrice == nil || *result.Data[1].PredictedPrice != 102.1 {
		t.Errorf("Data[1].PredictedPrice = %v, want 102.1", result.Data[1].PredictedPrice)
	}
}

func TestForecastRequiresTicker(t *testing.T) {
	svc := NewMarketService(&stubForecaster{})

	_, err := svc.Forecast(context.Background(), analytics.ForecastRequest{})
	if !errors.Is(err, ErrTickerRequired) {
		t.Errorf("Forecast() error = %v, want ErrTickerRequired", err)
	}
}

func TestForecastPassesUpstreamErrorThrough(t *testing.T) {
	upstream := &analytics.UpstreamError{Message: "No data found for the given ticker"}
	svc := NewMarketService(&stubForecaster{err: upstream})

	_, err := svc.Forecast(context.Background(), analytics.ForecastRequest{Ticker: "BOGUS"})

	var ue *analytics.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("Forecast() error = %v, want *UpstreamError", err)
	}
	if ue.Message != upstream.Message {
		t.Errorf("Message = %q, want upstream text unchanged", ue.Message)
	}
}
