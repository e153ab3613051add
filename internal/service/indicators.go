package service

import (
	"context"

	"github.com/stockpulse/stockpulse/internal/analytics"
	"github.com/stockpulse/stockpulse/internal/model"
)

// IndicatorFetcher is the slice of the analytics client the indicator
// service needs.
type IndicatorFetcher interface {
	Indicators(ctx context.Context, req analytics.IndicatorRequest) (*model.Indicators, error)
}

type IndicatorService struct {
	fetcher IndicatorFetcher
}

func NewIndicatorService(fetcher IndicatorFetcher) *IndicatorService {
	return &IndicatorService{fetcher: fetcher}
}

func (s *IndicatorService) Report(ctx context.Context, req analytics.IndicatorRequest) (*model.Indicators, error) {
	if req.Ticker == "" {
		return nil, ErrTickerRequired
	}
	return s.fetcher.Indicators(ctx, req)
}
