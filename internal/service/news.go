package service

import (
	"context"

	"github.com/stockpulse/stockpulse/internal/analytics"
	"github.com/stockpulse/stockpulse/internal/model"
	"github.com/stockpulse/stockpulse/internal/sentiment"
)

// NewsFetcher is the slice of the analytics client the news service needs.
type NewsFetcher interface {
	NewsImpact(ctx context.Context, ticker string) (*analytics.NewsImpactResponse, error)
}

type NewsService struct {
	fetcher NewsFetcher
}

func NewNewsService(fetcher NewsFetcher) *NewsService {
	return &NewsService{fetcher: fetcher}
}

// Impact fetches the news report for a ticker and tags each reason with its
// sentiment so the dashboard can color them without re-parsing the text.
func (s *NewsService) Impact(ctx context.Context, ticker string) (*model.NewsImpact, error) {
	if ticker == "" {
		return nil, ErrTickerRequired
	}

	resp, err := s.fetcher.NewsImpact(ctx, ticker)
	if err != nil {
		return nil, err
	}

	reasons := make([]model.NewsReason, 0, len(resp.Reasons))
	for _, reason := range resp.Reasons {
		reasons = append(reasons, model.NewsReason{
			Sentiment: sentiment.Classify(reason),
			Reason:    reason,
		})
	}

	return &model.NewsImpact{
		Impact:  resp.Impact,
		Reasons: reasons,
	}, nil
}
